package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jhoicas/Pedidos-api/internal/application/usecase"
	"github.com/jhoicas/Pedidos-api/internal/domain"
	"github.com/jhoicas/Pedidos-api/internal/infrastructure/sqlite"
	"github.com/jhoicas/Pedidos-api/pkg/config"
	"github.com/jhoicas/Pedidos-api/pkg/logger"
)

// Códigos de salida del importador, estables para scripting.
const (
	exitOK           = 0
	exitFileNotFound = 1
	exitParse        = 2
	exitMissingField = 3
	exitDomain       = 4
	exitConflict     = 5
	exitInterrupt    = 6
	exitStorage      = 10
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "cargar configuración:", err)
		return exitStorage
	}

	var (
		dataPath   = flag.String("data", "", "ruta al dataset JSON-lines (obligatorio)")
		dbPath     = flag.String("db", cfg.SQLite.Path, "ruta al archivo SQLite")
		topLimit   = flag.Int("top", cfg.Importer.TopUsersLimit, "cuántos usuarios mostrar en el ranking")
		verbose    = flag.Bool("verbose", false, "log detallado de la ingesta")
		keepSchema = flag.Bool("keep-schema", false, "no recrear el esquema antes de importar")
	)
	flag.Parse()

	if *dataPath == "" {
		flag.Usage()
		return exitFileNotFound
	}

	level := "warn"
	if *verbose {
		level = "info"
	}
	// Los logs van a stderr: stdout queda para los resultados de las consultas.
	log := logger.NewWithWriter(logger.Config{Env: cfg.App.Env, Level: level}, os.Stderr)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := sqlite.Open(*dbPath)
	if err != nil {
		log.Error().Err(err).Str("db", *dbPath).Msg("abrir base de datos")
		return exitStorage
	}
	defer db.Close()

	if !*keepSchema {
		if err := sqlite.DropSchema(ctx, db); err != nil {
			log.Error().Err(err).Msg("borrar esquema")
			return exitStorage
		}
	}
	if err := sqlite.CreateSchema(ctx, db); err != nil {
		log.Error().Err(err).Msg("crear esquema")
		return exitStorage
	}

	userRepo := sqlite.NewUserRepository(db)
	productRepo := sqlite.NewProductRepository(db)
	orderRepo := sqlite.NewOrderRepository(db)
	analyticsRepo := sqlite.NewAnalyticsRepository(db)
	service := usecase.NewOrderService(userRepo, productRepo, orderRepo, analyticsRepo, log)

	started := time.Now()
	inserted, err := service.BatchInsertOrdersFromFile(ctx, *dataPath)
	if err != nil {
		return reportIngestError(log, err)
	}
	log.Info().Int("orders", inserted).Dur("elapsed", time.Since(started)).Msg("importación completada")
	fmt.Printf("importados %d pedidos desde %s\n", inserted, *dataPath)

	if err := showQueries(ctx, service, *topLimit); err != nil {
		if errors.Is(err, context.Canceled) {
			return exitInterrupt
		}
		log.Error().Err(err).Msg("consulta de verificación")
		return exitStorage
	}
	return exitOK
}

// reportIngestError clasifica el fallo de la ingesta y devuelve el código de
// salida correspondiente.
func reportIngestError(log *logger.Logger, err error) int {
	switch {
	case errors.Is(err, context.Canceled):
		log.Warn().Msg("importación interrumpida")
		return exitInterrupt
	case errors.Is(err, os.ErrNotExist):
		log.Error().Err(err).Msg("dataset no encontrado")
		return exitFileNotFound
	}

	var parseErr *domain.ParsingError
	if errors.As(err, &parseErr) {
		log.Error().Int("line", parseErr.Line).Err(err).Msg("línea malformada")
		return exitParse
	}
	var missing *domain.MissingFieldError
	if errors.As(err, &missing) {
		log.Error().Int("line", missing.Line).Str("field", missing.Field).Msg("campo faltante")
		return exitMissingField
	}
	var conflict *domain.ConflictError
	if errors.As(err, &conflict) {
		log.Error().Int64("order_id", conflict.OrderID).Msg("pedido duplicado")
		return exitConflict
	}
	if errors.Is(err, domain.ErrDomain) {
		log.Error().Err(err).Msg("registro inválido")
		return exitDomain
	}

	log.Error().Err(err).Msg("fallo de almacenamiento")
	return exitStorage
}

// showQueries ejecuta las dos consultas de lectura sobre lo importado y
// escribe los resultados en stdout.
func showQueries(ctx context.Context, service *usecase.OrderService, topLimit int) error {
	since := time.Unix(0, 0).UTC()
	till := time.Now().UTC().Add(time.Hour)

	orders, err := service.SearchOrdersByDateRange(ctx, since, till)
	if err != nil {
		return err
	}
	fmt.Printf("\npedidos entre %s y %s: %d\n", since.Format(time.RFC3339), till.Format(time.RFC3339), len(orders))
	for _, o := range orders {
		fmt.Printf("  %s\n", o)
	}

	top, err := service.TopUsersByQuantity(ctx, topLimit)
	if err != nil {
		return err
	}
	fmt.Printf("\ntop %d usuarios por unidades compradas:\n", topLimit)
	for i, u := range top {
		fmt.Printf("  %d. %s\n", i+1, u)
	}
	return nil
}
