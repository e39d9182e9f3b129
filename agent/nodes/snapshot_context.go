package cyclenode

// SnapshotContext serializes the final context and closes out the cycle.
func SnapshotContext(in *CycleState) (CycleOutput, error) {
	if in == nil || in.Context == nil {
		return CycleOutput{}, ErrNilState
	}

	snapshot, err := in.Context.Snapshot()
	if err != nil {
		return CycleOutput{}, err
	}

	return CycleOutput{
		CycleID:     in.CycleID,
		Snapshot:    snapshot,
		Reports:     in.Reports,
		Drafts:      in.Drafts,
		Processed:   in.Processed,
		MailboxSkip: in.MailboxSkip,
	}, nil
}
