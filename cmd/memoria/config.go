package main

import "fmt"

// MemoriaConfig representa la configuración del administrador de memoria
type MemoriaConfig struct {
	IPMemoria               string `json:"IP_MEMORIA"`
	PuertoMemoria           int    `json:"PUERTO_MEMORIA"`
	LogLevel                string `json:"LOG_LEVEL"`
	TamVirtual              int    `json:"TAM_MEMORIA_VIRTUAL"`      // Tamaño del espacio virtual en palabras
	TamFisico               int    `json:"TAM_MEMORIA_FISICA"`       // Tamaño de la memoria física en palabras
	TamPagina               int    `json:"TAM_PAGINA"`               // Tamaño de página en palabras
	Algoritmo               string `json:"ALGORITMO_REEMPLAZO"`      // FIFO, CLOCK o AGING
	IntervaloEnvejecimiento int    `json:"INTERVALO_ENVEJECIMIENTO"` // Accesos entre pasadas de envejecimiento
	RetardoMemoria          int    `json:"RETARDO_MEMORIA"`          // Retardo de acceso a memoria en ms
	RetardoSwap             int    `json:"RETARDO_SWAP"`             // Retardo de acceso a swap en ms
	SwapfilePath            string `json:"SWAPFILE_PATH"`            // Ruta al archivo de swap
	DumpPath                string `json:"DUMP_PATH"`                // Ruta para los archivos de dump
	RegistroFallosPath      string `json:"REGISTRO_FALLOS_PATH"`     // Ruta del registro de fallos de página
}

var config *MemoriaConfig

// validarConfiguracion chequea la geometría y las rutas antes de adquirir recursos
func validarConfiguracion(cfg *MemoriaConfig) error {
	if cfg.TamPagina <= 0 {
		return fmt.Errorf("TAM_PAGINA debe ser positivo: %d", cfg.TamPagina)
	}
	if cfg.TamVirtual <= 0 || cfg.TamVirtual%cfg.TamPagina != 0 {
		return fmt.Errorf("TAM_MEMORIA_VIRTUAL debe ser un múltiplo positivo del tamaño de página: %d", cfg.TamVirtual)
	}
	if cfg.TamFisico <= 0 || cfg.TamFisico%cfg.TamPagina != 0 {
		return fmt.Errorf("TAM_MEMORIA_FISICA debe ser un múltiplo positivo del tamaño de página: %d", cfg.TamFisico)
	}

	switch cfg.Algoritmo {
	case AlgoritmoFIFO, AlgoritmoClock:
	case AlgoritmoAging:
		if cfg.IntervaloEnvejecimiento <= 0 {
			return fmt.Errorf("INTERVALO_ENVEJECIMIENTO debe ser positivo con AGING: %d", cfg.IntervaloEnvejecimiento)
		}
	default:
		return fmt.Errorf("algoritmo de reemplazo desconocido: %s", cfg.Algoritmo)
	}

	if cfg.SwapfilePath == "" {
		return fmt.Errorf("SWAPFILE_PATH no puede estar vacío")
	}
	if cfg.DumpPath == "" {
		return fmt.Errorf("DUMP_PATH no puede estar vacío")
	}
	if cfg.RegistroFallosPath == "" {
		return fmt.Errorf("REGISTRO_FALLOS_PATH no puede estar vacío")
	}

	return nil
}
