package xlsx

// Tablas canónicas del sistema. Los encabezados replican las planillas que el
// negocio ya usa, así los libros siguen siendo legibles en cualquier hoja de
// cálculo.

// ProductsTable tabla del inventario.
func ProductsTable(path string) Table {
	return Table{
		Path:    path,
		Sheet:   "Sheet1",
		Headers: []string{"Product_ID", "Product_Name", "Category", "Current_Stock", "Threshold"},
	}
}

// SalesTable tabla del libro de ventas.
func SalesTable(path string) Table {
	return Table{
		Path:    path,
		Sheet:   "Sheet1",
		Headers: []string{"Product_ID", "Quantity_Sold", "Date"},
	}
}

// EmployeesTable tabla de la planilla de empleados.
func EmployeesTable(path string) Table {
	return Table{
		Path:    path,
		Sheet:   "Sheet1",
		Headers: []string{"Emp_ID", "Name", "Department", "Basic_Salary"},
	}
}

// AttendanceTable tabla del libro de asistencia.
func AttendanceTable(path string) Table {
	return Table{
		Path:    path,
		Sheet:   "Sheet1",
		Headers: []string{"Emp_ID", "Date", "Status"},
	}
}

// ReviewsTable tabla del libro de reseñas.
func ReviewsTable(path string) Table {
	return Table{
		Path:    path,
		Sheet:   "Sheet1",
		Headers: []string{"Customer_Name", "Feedback", "Rating", "Date"},
	}
}
