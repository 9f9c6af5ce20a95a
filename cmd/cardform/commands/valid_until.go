package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-cardform"
	"github.com/goliatone/go-cardform/components/validity"
)

func validUntilCmd(a *app) *cobra.Command {
	var (
		memberType string
		locale     string
		asISO      bool
	)
	cmd := &cobra.Command{
		Use:   "valid-until <issued-date>",
		Short: "Print the valid-until text for an issue date",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			extra := []cardform.OptionFn{
				cardform.WithValidityOptions(validity.WithMemberTypeSource(func() string { return memberType })),
			}
			if locale != "" {
				extra = append(extra, cardform.WithLocale(locale))
			}

			input := validity.NewInput(validity.DefaultDateParam, "")
			display := &validity.Display{}
			bindings := cardform.Setup(cardform.Form{IssuedDate: input, ValidUntil: display}, a.componentOptions(extra...)...)
			input.Set(args[0])

			if asISO {
				res := bindings.Validity.Last()
				if !res.Valid {
					return fmt.Errorf("invalid issued date %q", args[0])
				}
				_, err := fmt.Fprintln(cmd.OutOrStdout(), res.ValidUntilISO())
				return err
			}
			_, err := fmt.Fprintln(cmd.OutOrStdout(), display.Text())
			return err
		},
	}
	cmd.Flags().StringVarP(&memberType, "member-type", "m", "", "member type (BF, FF, JF, STADT, EXTERN, PRAKTIKANT)")
	cmd.Flags().StringVar(&locale, "locale", "", "display locale (default from config)")
	cmd.Flags().BoolVar(&asISO, "iso", false, "print the ISO date instead of the display text")
	return cmd
}
