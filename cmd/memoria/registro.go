package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/sisoputnfrba/tp-2025-2c-MemoriaVirtual/utils"
)

// registroFallos es el archivo de texto con una línea por fallo de página
var registroFallos *os.File

func abrirRegistroFallos() error {
	dir := filepath.Dir(config.RegistroFallosPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("error al crear directorio del registro: %v", err)
	}

	archivo, err := os.Create(config.RegistroFallosPath)
	if err != nil {
		return fmt.Errorf("error al crear registro de fallos: %v", err)
	}

	registroFallos = archivo
	utils.InfoLog.Info("Registro de fallos abierto", "archivo", config.RegistroFallosPath)
	return nil
}

// registrarFallo agrega la línea del fallo recién atendido
func registrarFallo(solicitada, marco, desalojada int) {
	linea := fmt.Sprintf("Fallo %6d | Accesos %8d | Página %4d | Marco %3d | Desalojada %s\n",
		admin.Fallos, admin.Accesos, solicitada, marco, formatearPagina(desalojada))

	if _, err := registroFallos.WriteString(linea); err != nil {
		fatalRecurso("Error escribiendo el registro de fallos", err)
	}
}

func cerrarRegistroFallos() {
	if registroFallos != nil {
		registroFallos.Close()
		registroFallos = nil
	}
}
