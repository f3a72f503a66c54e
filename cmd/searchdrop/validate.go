package main

import (
	"fmt"
	"io"

	"github.com/fwojciec/searchdrop"
)

// Run executes the validate article command.
func (c *ValidateArticleCmd) Run(deps *Dependencies) error {
	article := &searchdrop.Article{
		Title:       c.Title,
		Description: c.Description,
		State:       c.State,
		District:    c.District,
		Village:     c.Village,
		ImagePath:   c.Image,
	}

	if err := article.Validate(); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", searchdrop.ErrorMessage(err))
		for _, field := range article.InvalidFields() {
			fmt.Fprintf(deps.Stderr, "  invalid: %s\n", field)
		}
		return err
	}

	fmt.Fprintln(deps.Stdout, "ok")
	return nil
}

// Run executes the validate comment command. Without an argument the
// comment is read from stdin.
func (c *ValidateCommentCmd) Run(deps *Dependencies) error {
	body := c.Body
	if body == "" && deps.Stdin != nil {
		data, err := io.ReadAll(deps.Stdin)
		if err != nil {
			return err
		}
		body = string(data)
	}

	comment := &searchdrop.Comment{Body: body}
	if err := comment.Validate(); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", searchdrop.ErrorMessage(err))
		return err
	}

	fmt.Fprintln(deps.Stdout, "ok")
	return nil
}
