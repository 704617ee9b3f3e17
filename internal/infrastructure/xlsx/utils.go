package xlsx

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Negocio-api/internal/domain/entity"
)

// cell devuelve la celda i de la fila o cadena vacía. GetRows recorta las
// celdas vacías al final de cada fila, así que el índice puede exceder len(row).
func cell(row []string, i int) string {
	if i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

func parseInt(s, column string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("columna %s: valor %q no es un entero: %w", column, s, err)
	}
	return n, nil
}

func parseDecimal(s, column string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("columna %s: valor %q no es un decimal: %w", column, s, err)
	}
	return d, nil
}

func parseDate(s, column string) (time.Time, error) {
	t, err := time.Parse(entity.DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("columna %s: valor %q no es una fecha %s: %w", column, s, entity.DateLayout, err)
	}
	return t, nil
}
