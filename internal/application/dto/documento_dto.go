package dto

// DocumentoResponse es la proyección imprimible de una factura para la
// vista en pantalla. Los montos vienen formateados a 2 decimales: este DTO
// es capa de presentación, el redondeo ocurre recién acá.
type DocumentoResponse struct {
	Negocio     NegocioResponse `json:"negocio"`
	FacturaID   string          `json:"facturaId"`
	Fecha       string          `json:"fecha"`
	Cliente     string          `json:"cliente"` // vacío si la referencia cuelga
	AplicarIVA  bool            `json:"aplicarIVA"`
	Filas       []FilaResponse  `json:"filas"`
	Subtotal    string          `json:"subtotal"`
	IVA         string          `json:"iva"`
	Total       string          `json:"total"`
	PieDePagina []string        `json:"pieDePagina"`
}

// NegocioResponse encabezado con la identidad del negocio.
type NegocioResponse struct {
	Nombre    string `json:"nombre"`
	Direccion string `json:"direccion"`
	Telefono  string `json:"telefono"`
	Email     string `json:"email"`
}

// FilaResponse una línea de la tabla del documento.
type FilaResponse struct {
	Codigo         string `json:"codigo"`
	Nombre         string `json:"nombre"`
	Cantidad       int    `json:"cantidad"`
	PrecioUnitario string `json:"precioUnitario"`
	Subtotal       string `json:"subtotal"`
}
