package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrDuplicate    = errors.New("registro duplicado")
	ErrInvalidInput = errors.New("entrada inválida")
	ErrNoSales      = errors.New("sin ventas registradas")
)
