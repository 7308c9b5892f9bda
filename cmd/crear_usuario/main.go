// crear_usuario da de alta un miembro del personal del centro con acceso a la API interna.
//
// Uso: go run ./cmd/crear_usuario -email ana@centro.es -name "Ana Pérez" -role coordinador
// La contraseña se lee de la variable USER_PASSWORD o del flag -password.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"golang.org/x/text/unicode/norm"

	"github.com/jhoicas/practicas-api/internal/application/auth"
	"github.com/jhoicas/practicas-api/internal/application/dto"
	"github.com/jhoicas/practicas-api/internal/domain"
	"github.com/jhoicas/practicas-api/internal/infrastructure/postgres"
	"github.com/jhoicas/practicas-api/pkg/config"
)

func main() {
	emailFlag := flag.String("email", "", "email del usuario")
	name := flag.String("name", "", "nombre visible")
	role := flag.String("role", "coordinador", "admin | coordinador | tutor")
	password := flag.String("password", os.Getenv("USER_PASSWORD"), "contraseña (mínimo 8 caracteres)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuración: %v\n", err)
		os.Exit(1)
	}
	if cfg.Storage != "postgres" {
		fmt.Fprintln(os.Stderr, "crear_usuario requiere STORAGE=postgres")
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Conexión a PostgreSQL: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	if cfg.DB.AutoMigrate {
		if err := postgres.Migrate(ctx, pool); err != nil {
			fmt.Fprintf(os.Stderr, "Migraciones: %v\n", err)
			os.Exit(1)
		}
	}

	uc := auth.NewAuthUseCase(postgres.NewUserRepository(pool), auth.JWTConfig{})
	u, err := uc.CreateUser(ctx, dto.CreateUserRequest{
		Email:    *emailFlag,
		Password: *password,
		Name:     norm.NFC.String(*name),
		Role:     *role,
	})
	switch {
	case errors.Is(err, domain.ErrEmailAlreadyExists):
		fmt.Fprintf(os.Stderr, "Ya existe un usuario con email %s\n", *emailFlag)
		os.Exit(1)
	case errors.Is(err, domain.ErrInvalidInput):
		fmt.Fprintln(os.Stderr, "Datos inválidos: email obligatorio, contraseña de 8+ caracteres y rol admin, coordinador o tutor")
		os.Exit(2)
	case err != nil:
		fmt.Fprintf(os.Stderr, "Crear usuario: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Usuario creado: %s (%s, %s)\n", u.Email, u.Role, u.ID)
}
