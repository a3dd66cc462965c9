package main

// ClienteConfig representa la configuración del proceso cliente
type ClienteConfig struct {
	IPMemoria           string `json:"IP_MEMORIA"`
	PuertoMemoria       int    `json:"PUERTO_MEMORIA"`
	LogLevel            string `json:"LOG_LEVEL"`
	Prueba              string `json:"PRUEBA"`             // secuencial, ordenamiento o aleatorio
	Semilla             int64  `json:"SEMILLA"`            // semilla de los datos pseudoaleatorios
	CantidadElementos   int    `json:"CANTIDAD_ELEMENTOS"` // elementos a ordenar
	CantidadAccesos     int    `json:"CANTIDAD_ACCESOS"`   // accesos de la prueba aleatoria
	VolcarAlTerminar    bool   `json:"VOLCAR_AL_TERMINAR"`
	FinalizarAlTerminar bool   `json:"FINALIZAR_AL_TERMINAR"`
}

var config *ClienteConfig
