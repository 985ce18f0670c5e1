package dto

// CrearClienteRequest body para POST /api/clientes. Todos los campos son
// obligatorios.
type CrearClienteRequest struct {
	Nombre   string `json:"nombre"`
	Email    string `json:"email"`
	Telefono string `json:"telefono"`
}

// ActualizarClienteRequest body para PUT /api/clientes/:id (merge parcial).
type ActualizarClienteRequest struct {
	Nombre   *string `json:"nombre"`
	Email    *string `json:"email"`
	Telefono *string `json:"telefono"`
}

// ClienteResponse cliente en respuestas.
type ClienteResponse struct {
	ID       string `json:"id"`
	Nombre   string `json:"nombre"`
	Email    string `json:"email"`
	Telefono string `json:"telefono"`
}
