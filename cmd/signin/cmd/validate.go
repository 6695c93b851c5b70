package cmd

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/nfrund/signin/internal/app"
	"github.com/nfrund/signin/internal/domain"
	"github.com/nfrund/signin/internal/form"
	"github.com/nfrund/signin/internal/registry"
	"github.com/nfrund/signin/internal/sink"
	"github.com/nfrund/signin/internal/storage"
	"github.com/spf13/cobra"
)

var errInvalid = errors.New("credentials are invalid")

func newValidateCmd() *cobra.Command {
	var (
		variant    string
		schemaFile string
		creds      domain.Credentials
	)
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate credentials with one of the form variants",
		Long: `Runs the credentials through the chosen form variant exactly as a
browser submit would: every field is touched, the validator runs, and the
values are printed only when they are valid. Exits non-zero when invalid.`,
		Example: `  signin validate --variant manual --email a@b.com --password abcd
  signin validate --variant schema --schema schemas/signin.yaml --email bad`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := sink.NewWriterSink(cmd.OutOrStdout())

			reg := registry.New()
			for _, m := range app.NewModules(app.Dependencies{
				Sink:       out,
				Store:      storage.NewOSStore(),
				SchemaFile: schemaFile,
			}) {
				if err := m.Register(reg); err != nil {
					return err
				}
			}
			v, ok := registry.Get(reg, registry.ValidatorKey(variant))
			if !ok {
				return fmt.Errorf("unknown variant %q", variant)
			}

			f := form.New(ctx, form.Config{
				InitialValues: domain.InitialCredentials(),
				Validator:     v,
				OnSubmit: func(ctx context.Context, values form.Values) error {
					out.Inspect(ctx, "submitted", domain.CredentialsFrom(values))
					return nil
				},
			})
			for name, value := range creds.Values() {
				if err := f.HandleChange(ctx, name, value); err != nil {
					return err
				}
			}
			ran, err := f.HandleSubmit(ctx)
			if err != nil {
				return err
			}
			if ran {
				return nil
			}

			errs := f.State().Errors
			names := make([]string, 0, len(errs))
			for name := range errs {
				names = append(names, name)
			}
			sort.Strings(names)
			for _, name := range names {
				fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", name, errs[name])
			}
			return errInvalid
		},
	}
	cmd.Flags().StringVar(&variant, "variant", "manual", "form variant: manual or schema")
	cmd.Flags().StringVar(&schemaFile, "schema", "", "YAML schema file for the schema variant")
	cmd.Flags().StringVar(&creds.Email, "email", "", "email value")
	cmd.Flags().StringVar(&creds.Password, "password", "", "password value")
	return cmd
}
