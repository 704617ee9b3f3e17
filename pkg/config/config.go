package config

import (
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde
// env y opcionalmente archivo).
type Config struct {
	App       AppConfig
	Store     StoreConfig
	Analytics AnalyticsConfig
	Payroll   PayrollConfig
	CRM       CRMConfig
	Export    ExportConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env      string // development, staging, production
	Name     string
	LogLevel string
}

// StoreConfig rutas de los libros (.xlsx) que respaldan cada tabla.
type StoreConfig struct {
	InventoryPath  string
	SalesPath      string
	EmployeesPath  string
	AttendancePath string
	CRMPath        string
}

// AnalyticsConfig parámetros del motor de clasificación de demanda.
// El umbral y la ventana son constantes de negocio, no derivadas de los datos.
type AnalyticsConfig struct {
	WindowDays    int
	FastThreshold decimal.Decimal
}

// PayrollConfig divisor fijo de la tarifa diaria de nómina.
type PayrollConfig struct {
	Divisor int
}

// CRMConfig rango válido de calificación de reseñas (extremos inclusive).
type CRMConfig struct {
	RatingMin decimal.Decimal
	RatingMax decimal.Decimal
}

// ExportConfig destinos del reporte DSS. PDFPath vacío desactiva la
// rendición PDF.
type ExportConfig struct {
	XLSXPath string
	PDFPath  string
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde
// archivo). Las env vars tienen prioridad.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo de configuración (.env o config.env)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.AutomaticEnv()

	threshold, err := getDecimal(v, "CLASSIFY_FAST_THRESHOLD", "2")
	if err != nil {
		return nil, err
	}
	ratingMin, err := getDecimal(v, "CRM_RATING_MIN", "1")
	if err != nil {
		return nil, err
	}
	ratingMax, err := getDecimal(v, "CRM_RATING_MAX", "5")
	if err != nil {
		return nil, err
	}
	if ratingMax.LessThan(ratingMin) {
		return nil, fmt.Errorf("CRM_RATING_MAX (%s) menor que CRM_RATING_MIN (%s)", ratingMax, ratingMin)
	}

	cfg := &Config{
		App: AppConfig{
			Env:      getString(v, "APP_ENV", "development"),
			Name:     getString(v, "APP_NAME", "negocio-api"),
			LogLevel: getString(v, "LOG_LEVEL", "info"),
		},
		Store: StoreConfig{
			InventoryPath:  getString(v, "STORE_INVENTORY_PATH", "inventory.xlsx"),
			SalesPath:      getString(v, "STORE_SALES_PATH", "sales.xlsx"),
			EmployeesPath:  getString(v, "STORE_EMPLOYEES_PATH", "hrm_data/employees.xlsx"),
			AttendancePath: getString(v, "STORE_ATTENDANCE_PATH", "hrm_data/attendance.xlsx"),
			CRMPath:        getString(v, "STORE_CRM_PATH", "hrm_data/crm.xlsx"),
		},
		Analytics: AnalyticsConfig{
			WindowDays:    getInt(v, "CLASSIFY_WINDOW_DAYS", 30),
			FastThreshold: threshold,
		},
		Payroll: PayrollConfig{
			Divisor: getInt(v, "PAYROLL_DIVISOR", 30),
		},
		CRM: CRMConfig{
			RatingMin: ratingMin,
			RatingMax: ratingMax,
		},
		Export: ExportConfig{
			XLSXPath: getString(v, "EXPORT_DSS_XLSX_PATH", "DSS_Report.xlsx"),
			PDFPath:  getString(v, "EXPORT_DSS_PDF_PATH", "DSS_Report.pdf"),
		},
	}

	return cfg, nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case int:
			return v.GetInt(key)
		case string:
			n, _ := strconv.Atoi(v.GetString(key))
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}

func getDecimal(v *viper.Viper, key, def string) (decimal.Decimal, error) {
	s := getString(v, key, def)
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%s inválido (%q): %w", key, s, err)
	}
	return d, nil
}
