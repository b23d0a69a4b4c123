// issue_token emite un JWT para el personal del almacén cuando AUTH_JWT_SECRET está definido.
//
// Uso: go run ./cmd/issue_token -user maria -role admin [-minutes 480]
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/jhoicas/almoxarifado-api/pkg/config"
	"github.com/jhoicas/almoxarifado-api/pkg/jwt"
)

func main() {
	user := flag.String("user", "", "identificador del usuario (obligatorio)")
	role := flag.String("role", jwt.RoleOperator, "rol: admin | almoxarife")
	minutes := flag.Int("minutes", 0, "validez en minutos (0 = AUTH_JWT_EXPIRATION_MINUTES)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar configuración: %v\n", err)
		os.Exit(1)
	}
	if !cfg.JWT.Enabled() {
		fmt.Fprintln(os.Stderr, "AUTH_JWT_SECRET no está definido")
		os.Exit(1)
	}
	if *role != jwt.RoleAdmin && *role != jwt.RoleOperator {
		fmt.Fprintf(os.Stderr, "Rol desconocido %q\n", *role)
		os.Exit(2)
	}
	exp := *minutes
	if exp <= 0 {
		exp = cfg.JWT.Expiration
	}

	token, err := jwt.Generate(cfg.JWT.Secret, *user, *role, cfg.JWT.Issuer, exp)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Generar token: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(token)
}
