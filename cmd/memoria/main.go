package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/sisoputnfrba/tp-2025-2c-MemoriaVirtual/utils"
)

var modulo *utils.Modulo

func main() {
	// Verificar argumentos
	if len(os.Args) < 2 || len(os.Args) > 3 {
		imprimirUsoYSalir()
	}

	// Inicializar logger ANTES de usarlo
	utils.InicializarLogger("INFO", "Memoria")

	utils.InfoLog.Info("Iniciando administrador de memoria")

	rutaConfig := os.Args[1]

	// Verificar que el archivo existe
	if _, err := os.Stat(rutaConfig); os.IsNotExist(err) {
		fmt.Fprintf(os.Stderr, "Error: El archivo de configuración no existe: %s\n", rutaConfig)
		os.Exit(1)
	}

	// Crear módulo
	modulo = utils.NuevoModulo("Memoria", rutaConfig)

	// Cargar configuración
	config = utils.CargarConfiguracion[MemoriaConfig](rutaConfig)

	// Actualizar logger con configuración del archivo
	utils.InicializarLogger(config.LogLevel, "Memoria")
	utils.InfoLog.Info("Configuración cargada", "nivel_log", config.LogLevel, "config_path", rutaConfig)

	// Resolver el algoritmo: el flag de línea de comandos pisa al archivo
	if config.Algoritmo == "" {
		config.Algoritmo = AlgoritmoFIFO
	}
	config.Algoritmo = strings.ToUpper(config.Algoritmo)

	if len(os.Args) == 3 {
		algoritmo, ok := algoritmoDeFlag(os.Args[2])
		if !ok {
			imprimirUsoYSalir()
		}
		config.Algoritmo = algoritmo
	}

	if err := validarConfiguracion(config); err != nil {
		fmt.Fprintf(os.Stderr, "Error: Configuración inválida: %v\n", err)
		os.Exit(1)
	}

	// Inicializar componentes
	inicializarMemoriaVirtual()
	instalarSenales()
	go buclePrincipal()

	// Registrar handlers
	registrarHandlers()

	// Iniciar servidor
	modulo.IniciarServidor(config.IPMemoria, config.PuertoMemoria)

	utils.InfoLog.Info(fmt.Sprintf("## Administrador de memoria iniciado - PID: %d - Algoritmo: %s",
		admin.PIDManager, admin.Algoritmo))

	// Mantener el programa corriendo
	select {}
}

// algoritmoDeFlag interpreta el selector de algoritmo de la línea de comandos
func algoritmoDeFlag(flag string) (string, bool) {
	switch strings.ToLower(flag) {
	case "-fifo":
		return AlgoritmoFIFO, true
	case "-clock":
		return AlgoritmoClock, true
	case "-aging":
		return AlgoritmoAging, true
	}
	return "", false
}

func imprimirUsoYSalir() {
	fmt.Fprintf(os.Stderr, "Uso: %s <archivo_configuracion> [-fifo|-clock|-aging]\n", os.Args[0])
	fmt.Fprintf(os.Stderr, "Ejemplo: %s configs/memoria.json -clock\n", os.Args[0])
	os.Exit(1)
}

func registrarHandlers() {
	modulo.RegistrarHandler(strconv.Itoa(utils.MensajeHandshake), "handshake", handlerHandshake)
	modulo.RegistrarHandler(strconv.Itoa(utils.MensajeOperacion), "default", handlerOperacion)
	modulo.RegistrarHandler(strconv.Itoa(utils.MensajeLeer), "default", handlerLeer)
	modulo.RegistrarHandler(strconv.Itoa(utils.MensajeEscribir), "default", handlerEscribir)
	modulo.RegistrarHandler(strconv.Itoa(utils.MensajeVolcadoMemoria), "default", handlerVolcado)
	modulo.RegistrarHandler(strconv.Itoa(utils.MensajeEstado), "default", handlerEstado)
	modulo.RegistrarHandler(strconv.Itoa(utils.MensajeFinalizar), "default", handlerFinalizar)

	utils.InfoLog.Info("Handlers registrados correctamente")
}
