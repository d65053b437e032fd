package commands

import (
	"errors"
	"fmt"

	"github.com/uga-caes/docsite/internal/publish"
)

// PublishCmd implements the 'publish' command.
type PublishCmd struct {
	Message string `short:"m" help:"Commit message (defaults to publish.message from config)"`
}

func (p *PublishCmd) Run(_ *Global, root *CLI) error {
	cfg, err := LoadConfig(root)
	if err != nil {
		return err
	}

	hash, err := publish.NewPublisher(cfg).Publish(p.Message)
	if errors.Is(err, publish.ErrNoChanges) {
		fmt.Println("No changes to publish")
		return nil
	}
	if err != nil {
		return err
	}
	fmt.Printf("Committed %s\n", hash)
	return nil
}
