// Package manifest decodes a declarative YAML description of a journal
// into the ledger model. It is an input format for the CLI, not a
// ledger-file parser; the ledger text itself is write-only.
package manifest

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/ledgerdev/ledgerkit/ledger"
)

// Document is the top-level manifest structure.
type Document struct {
	Entries []Entry `yaml:"entries"`
}

// Entry is one journal-level element: a comment or a transaction.
type Entry struct {
	Comment     *string      `yaml:"comment"`
	Transaction *Transaction `yaml:"transaction"`
}

// Transaction describes a transaction header and body.
type Transaction struct {
	Date    string      `yaml:"date"`
	Date2   string      `yaml:"date2"`
	Status  string      `yaml:"status"`
	Code    string      `yaml:"code"`
	Payee   string      `yaml:"payee"`
	Note    string      `yaml:"note"`
	Tags    []Tag       `yaml:"tags"`
	Entries []BodyEntry `yaml:"entries"`
}

// BodyEntry is one transaction-body element: a comment or a posting.
type BodyEntry struct {
	Comment *string  `yaml:"comment"`
	Posting *Posting `yaml:"posting"`
}

// Posting describes one account leg.
type Posting struct {
	Account string `yaml:"account"`
	Status  string `yaml:"status"`
	Amount  string `yaml:"amount"`
	Balance string `yaml:"balance"`
	Comment string `yaml:"comment"`
	Date    string `yaml:"date"`
	Date2   string `yaml:"date2"`
	Tags    []Tag  `yaml:"tags"`
}

// Tag is an ordered key-value pair. Tags are a list rather than a YAML
// map so render order is the manifest's order.
type Tag struct {
	Name  string `yaml:"name"`
	Value string `yaml:"value"`
}

// Load reads a manifest file and builds the journal it describes.
func Load(path string) (*ledger.Journal, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading manifest: %w", err)
	}
	return Parse(data)
}

// Parse builds a journal from manifest bytes.
func Parse(data []byte) (*ledger.Journal, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing manifest: %w", err)
	}

	journal := ledger.NewJournal()
	for i, entry := range doc.Entries {
		switch {
		case entry.Comment != nil:
			journal.AddComment(ledger.NewComment(*entry.Comment))
		case entry.Transaction != nil:
			tx, err := buildTransaction(entry.Transaction)
			if err != nil {
				return nil, fmt.Errorf("entry %d: %w", i, err)
			}
			journal.AddTransaction(tx)
		default:
			return nil, fmt.Errorf("entry %d: want comment or transaction", i)
		}
	}
	return journal, nil
}

func buildTransaction(mt *Transaction) (*ledger.Transaction, error) {
	date, err := ledger.ParseDate(mt.Date)
	if err != nil {
		return nil, fmt.Errorf("date: %w", err)
	}
	tx := ledger.NewTransaction(date)

	if mt.Date2 != "" {
		if tx.Date2, err = ledger.ParseDate(mt.Date2); err != nil {
			return nil, fmt.Errorf("date2: %w", err)
		}
	}
	if tx.Status, err = ledger.ParseStatus(mt.Status); err != nil {
		return nil, fmt.Errorf("status: %w", err)
	}
	tx.Code = mt.Code
	tx.Payee = mt.Payee
	tx.Note = mt.Note
	tx.Tags = buildTags(mt.Tags)

	for i, body := range mt.Entries {
		switch {
		case body.Comment != nil:
			tx.AddComment(ledger.NewComment(*body.Comment))
		case body.Posting != nil:
			p, err := buildPosting(body.Posting)
			if err != nil {
				return nil, fmt.Errorf("posting %d: %w", i, err)
			}
			tx.AddPosting(p)
		default:
			return nil, fmt.Errorf("body entry %d: want comment or posting", i)
		}
	}
	return tx, nil
}

func buildPosting(mp *Posting) (*ledger.Posting, error) {
	if mp.Account == "" {
		return nil, fmt.Errorf("account is required")
	}
	p := ledger.NewPosting(mp.Account)

	var err error
	if p.Status, err = ledger.ParseStatus(mp.Status); err != nil {
		return nil, fmt.Errorf("status: %w", err)
	}
	if mp.Amount != "" {
		ca, err := ledger.ParseCostedAmount(mp.Amount)
		if err != nil {
			return nil, fmt.Errorf("amount: %w", err)
		}
		p.Amount = &ca
	}
	if mp.Balance != "" {
		ca, err := ledger.ParseCostedAmount(mp.Balance)
		if err != nil {
			return nil, fmt.Errorf("balance: %w", err)
		}
		p.Balance = &ca
	}
	if mp.Comment != "" {
		c := ledger.NewComment(mp.Comment)
		p.Comment = &c
	}
	if mp.Date != "" {
		if p.Date, err = ledger.ParseDate(mp.Date); err != nil {
			return nil, fmt.Errorf("date: %w", err)
		}
	}
	if mp.Date2 != "" {
		if p.Date2, err = ledger.ParseDate(mp.Date2); err != nil {
			return nil, fmt.Errorf("date2: %w", err)
		}
	}
	p.Tags = buildTags(mp.Tags)
	return p, nil
}

func buildTags(mts []Tag) ledger.Tags {
	var tags ledger.Tags
	for _, t := range mts {
		tags = tags.Upsert(t.Name, t.Value)
	}
	return tags
}
