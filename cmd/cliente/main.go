package main

import (
	"fmt"
	"os"

	"github.com/sisoputnfrba/tp-2025-2c-MemoriaVirtual/utils"
)

func main() {
	// Verificar argumentos
	if len(os.Args) < 2 {
		fmt.Fprintf(os.Stderr, "Uso: %s <archivo_configuracion>\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Ejemplo: %s configs/cliente.json\n", os.Args[0])
		os.Exit(1)
	}

	// Inicializar logger ANTES de usarlo
	utils.InicializarLogger("INFO", "Cliente")

	utils.InfoLog.Info("Iniciando cliente de memoria virtual")

	rutaConfig := os.Args[1]

	// Verificar que el archivo existe
	if _, err := os.Stat(rutaConfig); os.IsNotExist(err) {
		fmt.Fprintf(os.Stderr, "Error: El archivo de configuración no existe: %s\n", rutaConfig)
		os.Exit(1)
	}

	// Cargar configuración
	config = utils.CargarConfiguracion[ClienteConfig](rutaConfig)

	// Actualizar logger con configuración del archivo
	utils.InicializarLogger(config.LogLevel, "Cliente")
	utils.InfoLog.Info("Configuración cargada", "config_path", rutaConfig, "prueba", config.Prueba)

	// Conectar con el administrador
	clienteHTTP := utils.NewHTTPClient(config.IPMemoria, config.PuertoMemoria, "Cliente->Memoria")
	datosHandshake := conectarConReintentos(clienteHTTP)
	espacio := espacioVirtual(datosHandshake)

	utils.InfoLog.Info(fmt.Sprintf("## Prueba iniciada - Tipo: %s - Espacio virtual: %d palabras",
		config.Prueba, espacio))

	acceso := nuevoAccesoMemoria(clienteHTTP)

	if err := acceso.AnunciarPrueba(config.Prueba); err != nil {
		utils.InfoLog.Warn("No se pudo anunciar la prueba", "error", err)
	}

	// Un acceso rechazado por el administrador es fatal para el cliente
	if err := ejecutarPrueba(acceso, espacio); err != nil {
		utils.ErrorLog.Error("La prueba falló", "prueba", config.Prueba, "error", err)
		os.Exit(1)
	}

	utils.InfoLog.Info(fmt.Sprintf("## Prueba completada - Tipo: %s", config.Prueba))

	informarEstado(acceso)

	if config.VolcarAlTerminar {
		if err := acceso.SolicitarVolcado(); err != nil {
			utils.ErrorLog.Error("No se pudo solicitar el volcado", "error", err)
		}
	}

	if config.FinalizarAlTerminar {
		acceso.Finalizar()
	}
}

// espacioVirtual calcula el espacio en palabras a partir del handshake
func espacioVirtual(datos map[string]interface{}) int {
	paginas, okPaginas := datos["paginas"].(float64)
	tamPagina, okTam := datos["tam_pagina"].(float64)

	if !okPaginas || !okTam || paginas <= 0 || tamPagina <= 0 {
		utils.ErrorLog.Error("Handshake sin geometría de memoria", "datos", datos)
		os.Exit(1)
	}

	return int(paginas) * int(tamPagina)
}

// informarEstado registra los contadores finales del administrador
func informarEstado(acceso *AccesoMemoria) {
	estado, err := acceso.ObtenerEstado()
	if err != nil {
		utils.ErrorLog.Error("No se pudo obtener el estado del administrador", "error", err)
		return
	}

	utils.InfoLog.Info(fmt.Sprintf("## Estado del administrador - Algoritmo: %v - Fallos: %v - Accesos: %v - Desalojos: %v",
		estado["algoritmo"], estado["fallos"], estado["accesos"], estado["desalojos"]))
}
