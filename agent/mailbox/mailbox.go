// Package mailbox reads unread messages over IMAP. Fetching a message
// body marks it seen on the remote store, so each message is delivered
// at most once per run.
package mailbox

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/emersion/go-imap/v2"
	"github.com/emersion/go-imap/v2/imapclient"

	contractx "github.com/Mustafabeshara/Agent-Yahoo-gmail/agent/contract"
)

type Config struct {
	Server   string `envconfig:"SERVER" split_words:"true" default:"imap.mail.yahoo.com:993"`
	Email    string `envconfig:"EMAIL" split_words:"true" required:"true"`
	Password string `envconfig:"PASSWORD" split_words:"true" required:"true"`
	Folder   string `envconfig:"FOLDER" split_words:"true" default:"INBOX"`
}

// Reader connects per fetch; the process runs one cycle and exits, so a
// held connection would buy nothing.
type Reader struct {
	cfg Config
}

func NewReader(cfg Config) (*Reader, error) {
	if strings.TrimSpace(cfg.Server) == "" {
		return nil, errors.New("imap server is required")
	}
	if strings.TrimSpace(cfg.Email) == "" || strings.TrimSpace(cfg.Password) == "" {
		return nil, errors.New("imap credentials are required")
	}
	if strings.TrimSpace(cfg.Folder) == "" {
		cfg.Folder = "INBOX"
	}
	return &Reader{cfg: cfg}, nil
}

// FetchUnread returns all currently-unseen messages in the configured
// folder. Every error is wrapped in ErrMailboxFetch; callers treat it as
// "no messages available this cycle", not as fatal.
func (r *Reader) FetchUnread(ctx context.Context) ([]contractx.Message, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", contractx.ErrMailboxFetch, err)
	}

	client, err := imapclient.DialTLS(r.cfg.Server, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: dial %s: %v", contractx.ErrMailboxFetch, r.cfg.Server, err)
	}
	defer client.Close()

	if err := client.Login(r.cfg.Email, r.cfg.Password).Wait(); err != nil {
		return nil, fmt.Errorf("%w: login: %v", contractx.ErrMailboxFetch, err)
	}

	if _, err := client.Select(r.cfg.Folder, nil).Wait(); err != nil {
		return nil, fmt.Errorf("%w: select %s: %v", contractx.ErrMailboxFetch, r.cfg.Folder, err)
	}

	searchData, err := client.Search(&imap.SearchCriteria{
		NotFlag: []imap.Flag{imap.FlagSeen},
	}, nil).Wait()
	if err != nil {
		return nil, fmt.Errorf("%w: search unseen: %v", contractx.ErrMailboxFetch, err)
	}

	seqNums := searchData.AllSeqNums()
	if len(seqNums) == 0 {
		_ = client.Logout().Wait()
		return nil, nil
	}

	// Fetching the body without PEEK sets \Seen remotely; that is the
	// at-most-once delivery guarantee.
	bodySection := &imap.FetchItemBodySection{Specifier: imap.PartSpecifierText}
	buffers, err := client.Fetch(imap.SeqSetNum(seqNums...), &imap.FetchOptions{
		Envelope:    true,
		BodySection: []*imap.FetchItemBodySection{bodySection},
	}).Collect()
	if err != nil {
		return nil, fmt.Errorf("%w: fetch: %v", contractx.ErrMailboxFetch, err)
	}

	messages := make([]contractx.Message, 0, len(buffers))
	for _, buf := range buffers {
		if buf == nil || buf.Envelope == nil {
			continue
		}
		messages = append(messages, contractx.Message{
			From:    senderAddress(buf.Envelope),
			Subject: buf.Envelope.Subject,
			Body:    string(buf.FindBodySection(bodySection)),
		})
	}

	if err := client.Logout().Wait(); err != nil {
		// Messages are already in hand; a noisy logout is not a fetch failure.
		return messages, nil
	}
	return messages, nil
}

func senderAddress(env *imap.Envelope) string {
	if len(env.From) == 0 {
		return ""
	}
	return env.From[0].Addr()
}
