// Command token imprime un Bearer token firmado con JWT_SECRET para probar la API.
//
//	go run ./cmd/token <subject> <rol>
//
// Roles: admin, bodeguero, consulta.
package main

import (
	"fmt"
	"os"

	"github.com/jhoicas/Bodega-api/pkg/config"
	"github.com/jhoicas/Bodega-api/pkg/jwt"
)

func main() {
	if len(os.Args) != 3 {
		fmt.Fprintln(os.Stderr, "uso: token <subject> <admin|bodeguero|consulta>")
		os.Exit(2)
	}
	subject, role := os.Args[1], os.Args[2]
	switch role {
	case jwt.RoleAdmin, jwt.RoleBodeguero, jwt.RoleConsulta:
	default:
		fmt.Fprintf(os.Stderr, "rol desconocido: %q\n", role)
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "cargar configuración:", err)
		os.Exit(1)
	}
	tok, err := jwt.Generate(cfg.JWT.Secret, subject, role, cfg.JWT.Issuer, cfg.JWT.Expiration)
	if err != nil {
		fmt.Fprintln(os.Stderr, "generar token:", err)
		os.Exit(1)
	}
	fmt.Println(tok)
}
