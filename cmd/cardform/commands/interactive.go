package commands

import (
	"context"
	"errors"
	"fmt"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/spf13/cobra"

	"github.com/goliatone/go-cardform"
	"github.com/goliatone/go-cardform/components/validity"
	"github.com/goliatone/go-cardform/pkg/i18n"
)

// ErrAborted is returned when the user interrupts a prompt.
var ErrAborted = errors.New("cardform: prompt aborted")

// InputConfig configures a text prompt.
type InputConfig struct {
	Message   string
	Help      string
	Default   string
	Validator func(string) error
}

// Prompter abstracts the terminal so the interactive flow can be tested.
type Prompter interface {
	Input(ctx context.Context, cfg InputConfig) (string, error)
	Select(ctx context.Context, message string, options []string, defaultIndex int) (int, error)
}

type surveyPrompter struct{}

func newSurveyPrompter() Prompter {
	return surveyPrompter{}
}

func (surveyPrompter) Input(ctx context.Context, cfg InputConfig) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	var out string
	prompt := &survey.Input{Message: cfg.Message, Help: cfg.Help, Default: cfg.Default}
	var opts []survey.AskOpt
	if cfg.Validator != nil {
		opts = append(opts, survey.WithValidator(func(ans interface{}) error {
			s, _ := ans.(string)
			return cfg.Validator(s)
		}))
	}
	if err := survey.AskOne(prompt, &out, opts...); err != nil {
		return "", translateSurveyErr(err)
	}
	return out, nil
}

func (surveyPrompter) Select(ctx context.Context, message string, options []string, defaultIndex int) (int, error) {
	if err := ctx.Err(); err != nil {
		return -1, err
	}
	prompt := &survey.Select{Message: message, Options: options}
	if defaultIndex >= 0 && defaultIndex < len(options) {
		prompt.Default = options[defaultIndex]
	}
	var out int
	if err := survey.AskOne(prompt, &out); err != nil {
		return -1, translateSurveyErr(err)
	}
	return out, nil
}

func translateSurveyErr(err error) error {
	if errors.Is(err, terminal.InterruptErr) {
		return ErrAborted
	}
	return err
}

var memberTypes = []string{
	validity.MemberTypeProfessional,
	validity.MemberTypeVolunteer,
	validity.MemberTypeYouth,
	validity.MemberTypeCity,
	validity.MemberTypeExternal,
	validity.MemberTypeIntern,
}

func interactiveCmd(a *app, prompter Prompter) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "interactive",
		Short: "Prompt for an issue date and print the valid-until text",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}

			idx, err := prompter.Select(ctx, "Mitgliedsart", memberTypes, 1)
			if err != nil {
				return err
			}
			memberType := memberTypes[idx]

			input := validity.NewInput(validity.DefaultDateParam, "")
			display := &validity.Display{}
			cardform.Setup(cardform.Form{IssuedDate: input, ValidUntil: display},
				a.componentOptions(cardform.WithValidityOptions(
					validity.WithMemberTypeSource(func() string { return memberType }),
				))...)

			catalog := i18n.MustDefaultCatalog()
			value, err := prompter.Input(ctx, InputConfig{
				Message: i18n.Translate(catalog, a.cfg.Locale, "validity.prompt", "Ausstellungsdatum", nil),
				Help:    i18n.Translate(catalog, a.cfg.Locale, "validity.prompt.help", "", nil),
				Validator: func(s string) error {
					if _, ok := validity.ParseIssuedDate(s); !ok {
						return fmt.Errorf("%q ist kein gültiges Datum", s)
					}
					return nil
				},
			})
			if err != nil {
				return err
			}

			input.Set(value)
			_, err = fmt.Fprintln(cmd.OutOrStdout(), display.Text())
			return err
		},
	}
	return cmd
}
