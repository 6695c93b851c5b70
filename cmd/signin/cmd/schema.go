package cmd

import (
	"bytes"
	"fmt"

	"github.com/nfrund/signin/internal/form/schema"
	"github.com/nfrund/signin/internal/modules/schemaform"
	"github.com/nfrund/signin/internal/storage"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

func newSchemaCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "schema",
		Short: "Inspect the declarative sign-in schema",
	}
	cmd.AddCommand(newSchemaExportCmd(afero.NewOsFs()))
	return cmd
}

func newSchemaExportCmd(fs afero.Fs) *cobra.Command {
	var outPath string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the built-in schema as YAML",
		Long: `Writes the built-in sign-in schema as a YAML document. The output is a
starting point for a SCHEMA_FILE override.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := schema.Marshal(schemaform.SignInSchema)
			if err != nil {
				return err
			}
			if outPath == "" {
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}
			store := storage.NewAferoStore(fs)
			if _, err := store.Save(cmd.Context(), outPath, bytes.NewReader(data)); err != nil {
				return fmt.Errorf("write %s: %w", outPath, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote schema to %s\n", outPath)
			return nil
		},
	}
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "output file (default stdout)")
	return cmd
}
