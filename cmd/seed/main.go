// Seed crea los libros (.xlsx) del sistema con datos de muestra para
// desarrollo: inventario, planilla de empleados y los libros vacíos de
// ventas, asistencia y reseñas.
package main

import (
	"os"
	"path/filepath"

	"github.com/jhoicas/Negocio-api/internal/infrastructure/xlsx"
	"github.com/jhoicas/Negocio-api/pkg/config"
	"github.com/jhoicas/Negocio-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel})
	log.Info().Str("app", cfg.App.Name).Msg("sembrando libros de muestra")

	tables := []struct {
		table xlsx.Table
		rows  [][]string
	}{
		{
			table: xlsx.ProductsTable(cfg.Store.InventoryPath),
			rows: [][]string{
				{"1", "Arroz 1kg", "Granos", "120", "40"},
				{"2", "Aceite 900ml", "Aceites", "35", "50"},
				{"3", "Azúcar 1kg", "Granos", "80", "30"},
			},
		},
		{table: xlsx.SalesTable(cfg.Store.SalesPath)},
		{
			table: xlsx.EmployeesTable(cfg.Store.EmployeesPath),
			rows: [][]string{
				{"1", "Laura Pérez", "Ventas", "1800000"},
				{"2", "Carlos Ruiz", "Bodega", "1500000"},
				{"3", "Ana Gómez", "Administración", "2200000"},
			},
		},
		{table: xlsx.AttendanceTable(cfg.Store.AttendancePath)},
		{table: xlsx.ReviewsTable(cfg.Store.CRMPath)},
	}

	for _, t := range tables {
		if dir := filepath.Dir(t.table.Path); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				log.Fatal().Err(err).Str("dir", dir).Msg("crear directorio")
			}
		}
		if err := xlsx.NewStore(t.table).Save(t.rows); err != nil {
			log.Fatal().Err(err).Str("path", t.table.Path).Msg("sembrar libro")
		}
		log.Info().Str("path", t.table.Path).Int("rows", len(t.rows)).Msg("libro sembrado")
	}
}
