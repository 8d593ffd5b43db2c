package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jhoicas/clientes-api/pkg/config"
	"github.com/jhoicas/clientes-api/pkg/jwt"
)

// newTokenCmd emite un JWT de desarrollo para una API con AUTH_ENABLED=true.
// El secreto y el issuer salen de JWT_SECRET / JWT_ISSUER salvo que se pasen por flag.
func newTokenCmd() *cobra.Command {
	var (
		secret, issuer, userID, role string
		minutes                      int
	)
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Genera un token Bearer firmado con JWT_SECRET",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if secret == "" || issuer == "" {
				if cfg, err := config.Load(); err == nil {
					if secret == "" {
						secret = cfg.JWT.Secret
					}
					if issuer == "" {
						issuer = cfg.JWT.Issuer
					}
					if minutes <= 0 {
						minutes = cfg.JWT.Expiration
					}
				}
			}
			if minutes <= 0 {
				minutes = 60
			}
			tok, err := jwt.Generate(secret, userID, role, issuer, minutes)
			if err != nil {
				return withCode(exitValidation, err)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), tok)
			return err
		},
	}
	cmd.Flags().StringVar(&secret, "secret", "", "Secreto HS256 (por defecto JWT_SECRET)")
	cmd.Flags().StringVar(&issuer, "issuer", "", "Issuer (por defecto JWT_ISSUER)")
	cmd.Flags().StringVar(&userID, "user", "clientctl", "user_id del token")
	cmd.Flags().StringVar(&role, "role", "admin", "Rol: admin, editor, viewer")
	cmd.Flags().IntVar(&minutes, "minutes", 0, "Minutos de validez (por defecto JWT_EXPIRATION_MINUTES)")
	return cmd
}
