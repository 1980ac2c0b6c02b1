package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.trai.ch/propstore/internal/app"
	"go.trai.ch/propstore/internal/core/domain"
	"go.trai.ch/zerr"
)

func (c *CLI) newSuggestCmd() *cobra.Command {
	var (
		session  string
		products []string
	)
	cmd := &cobra.Command{
		Use:   "suggest",
		Short: "Print the suggestions for a stored cart or a list of products",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if session == "" && len(products) == 0 {
				_ = cmd.Help()
				return nil
			}

			items := make([]domain.CartItem, 0, len(products))
			for _, raw := range products {
				item, err := parseCartItem(raw)
				if err != nil {
					return err
				}
				items = append(items, item)
			}

			suggestions, err := c.app.Suggest(cmd.Context(), app.SuggestOptions{SessionID: session, Items: items})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(suggestions) == 0 {
				_, _ = fmt.Fprintln(out, "no suggestions")
				return nil
			}
			for i, p := range suggestions {
				_, _ = fmt.Fprintf(out, "%d. #%d %s (%s) %.2f\n", i+1, p.ID, p.Name, p.Category, p.Price)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&session, "session", "", "Session id of a stored cart")
	cmd.Flags().StringArrayVar(&products, "product", nil, "Cart item as ID or ID:CATEGORY (repeatable)")
	return cmd
}

// parseCartItem reads "12" or "12:cards".
func parseCartItem(raw string) (domain.CartItem, error) {
	idPart, category, _ := strings.Cut(raw, ":")
	id, err := strconv.ParseInt(strings.TrimSpace(idPart), 10, 64)
	if err != nil || id <= 0 {
		return domain.CartItem{}, zerr.With(domain.ErrInvalidCartItem, "value", raw)
	}
	return domain.CartItem{ProductID: id, Category: strings.TrimSpace(category), Quantity: 1}, nil
}
