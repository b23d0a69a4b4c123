// import_products carga productos desde el CSV exportado por la planilla del almacén.
//
// Uso: go run ./cmd/import_products [-latin1] [-dry-run] productos.csv
// Usa el mismo STORAGE_DRIVER y conexión que la API.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/jhoicas/almoxarifado-api/internal/application/usecase"
	"github.com/jhoicas/almoxarifado-api/internal/infrastructure/storage"
	"github.com/jhoicas/almoxarifado-api/pkg/config"
	"github.com/jhoicas/almoxarifado-api/pkg/logger"
)

func main() {
	latin1 := flag.Bool("latin1", false, "el archivo está en ISO-8859-1")
	dryRun := flag.Bool("dry-run", false, "valida sin escribir")
	flag.Parse()
	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Uso: import_products [-latin1] [-dry-run] archivo.csv")
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar configuración: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel, Service: "import_products"})

	f, err := os.Open(flag.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Abrir CSV: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	ctx := context.Background()
	backend, err := storage.Open(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión al almacenamiento")
	}
	defer backend.Close(ctx)

	uc := usecase.NewProductUseCase(backend.Products, backend.TxRunner)
	res, err := uc.Import(ctx, f, usecase.ImportOptions{Latin1: *latin1, DryRun: *dryRun})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Importar: %v\n", err)
		os.Exit(1)
	}
	for _, s := range res.Skipped {
		log.Warn().Int("line", s.Line).Str("reason", s.Reason).Msg("fila descartada")
	}
	verb := "Importados"
	if *dryRun {
		verb = "Válidos (sin escribir)"
	}
	fmt.Printf("%s: %d productos, %d filas descartadas\n", verb, res.Created, len(res.Skipped))
}
