package model

type MessageResponse struct {
	Mensaje string `json:"mensaje"`
}

type OperationResponse struct {
	Resultado *float64 `json:"resultado"`
	Mensaje   string   `json:"mensaje"`
}

type HealthResponse struct {
	Status string `json:"status"`
}

type ErrorResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

const (
	MessageRutValid   = "rut valido"
	MessageRutInvalid = "rut invalido"

	MessageOperationSuccess = "operacion exitosa"
	MessageOperationFailure = "operacion no pudo ser calculada"
)
