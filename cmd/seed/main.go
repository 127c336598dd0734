// seed crea el empleado de demostración y sus notas de gastos de ejemplo.
//
// Uso: go run ./cmd/seed [email] [password]
// Por defecto: a@a / azertyuiop. Usa la misma configuración que cmd/api.
package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/billed/internal/application/auth"
	"github.com/jhoicas/billed/internal/application/dto"
	"github.com/jhoicas/billed/internal/application/session"
	"github.com/jhoicas/billed/internal/application/store"
	"github.com/jhoicas/billed/internal/domain"
	"github.com/jhoicas/billed/internal/domain/entity"
	"github.com/jhoicas/billed/internal/infrastructure/postgres"
	"github.com/jhoicas/billed/internal/infrastructure/storage"
	"github.com/jhoicas/billed/pkg/config"
	"github.com/jhoicas/billed/pkg/logger"
)

type fixture struct {
	bill   entity.Bill
	status string
}

var fixtures = []fixture{
	{entity.Bill{Type: "Hôtel et logement", Name: "encore", Amount: decimal.NewFromInt(400), Date: "2004-04-04", VAT: "80", Pct: 20, Commentary: "séminaire billed"}, entity.BillStatusPending},
	{entity.Bill{Type: "Restaurants et bars", Name: "test1", Amount: decimal.NewFromInt(100), Date: "2001-01-01", VAT: "20", Pct: 20, Commentary: "plop"}, entity.BillStatusRefused},
	{entity.Bill{Type: "Services en ligne", Name: "test3", Amount: decimal.NewFromInt(300), Date: "2003-03-03", VAT: "60", Pct: 20}, entity.BillStatusAccepted},
	{entity.Bill{Type: "Restaurants et bars", Name: "test2", Amount: decimal.NewFromInt(200), Date: "2002-02-02", VAT: "40", Pct: 20, Commentary: "test2"}, entity.BillStatusAccepted},
}

func main() {
	email, password := "a@a", "azertyuiop"
	if len(os.Args) > 1 {
		email = os.Args[1]
	}
	if len(os.Args) > 2 {
		password = os.Args[2]
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar configuración: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.Log.Level})

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()
	if _, err := postgres.Migrate(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("migraciones")
	}

	userRepo := postgres.NewUserRepository(pool)
	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{Secret: cfg.JWT.Secret, ExpMinutes: cfg.JWT.Expiration, Issuer: cfg.JWT.Issuer})
	user, err := authUC.RegisterUser(ctx, dto.RegisterRequest{Email: email, Password: password, Type: entity.UserTypeEmployee})
	switch {
	case errors.Is(err, domain.ErrConflict):
		log.Info().Str("email", email).Msg("el empleado ya existe, no se crean notas")
		return
	case err != nil:
		log.Fatal().Err(err).Msg("crear empleado")
	}
	log.Info().Str("email", user.Email).Msg("empleado creado")

	var receipts store.ReceiptStorage = storage.NewDatabaseReceiptStorage(postgres.NewReceiptRepository(pool))
	if cfg.Storage.UseGCS() {
		gcs, err := storage.NewGCSReceiptStorage(ctx, cfg.Storage.GCSBucket, cfg.Storage.PublicBaseURL)
		if err != nil {
			log.Fatal().Err(err).Msg("cliente de Cloud Storage")
		}
		defer gcs.Close()
		receipts = gcs
	}

	billStore := store.NewRepositoryStore(postgres.NewBillRepository(pool), receipts, log.Component("store")).
		ForSession(session.Session{UserID: user.ID, Email: user.Email, Type: user.Type})

	img, err := placeholderPNG()
	if err != nil {
		log.Fatal().Err(err).Msg("generar justificante")
	}
	for i, f := range fixtures {
		created, err := billStore.Bills().Create(ctx, store.CreateRequest{
			FileName: fmt.Sprintf("justificatif-%d.png", i+1),
			Data:     img,
		})
		if err != nil {
			log.Fatal().Err(err).Msg("subir justificante")
		}
		if _, err := billStore.Bills().Update(ctx, store.UpdateRequest{Selector: created.Key, Bill: f.bill}); err != nil {
			log.Fatal().Err(err).Msg("enviar nota")
		}
		// El circuito de aprobación no forma parte de la aplicación: el estado final se fija por SQL.
		if f.status != entity.BillStatusPending {
			if _, err := pool.Exec(ctx, `UPDATE bills SET status = $2 WHERE id = $1`, created.Key, f.status); err != nil {
				log.Fatal().Err(err).Msg("fijar estado")
			}
		}
		log.Info().Str("bill_id", created.Key).Str("name", f.bill.Name).Str("status", f.status).Msg("nota creada")
	}
}

func placeholderPNG() ([]byte, error) {
	img := image.NewRGBA(image.Rect(0, 0, 64, 64))
	for x := 0; x < 64; x++ {
		for y := 0; y < 64; y++ {
			img.Set(x, y, color.RGBA{R: 14, G: 90, B: 229, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
