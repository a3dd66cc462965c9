package main

import (
	"os"

	"github.com/sisoputnfrba/tp-2025-2c-MemoriaVirtual/utils"
)

// salir se reemplaza en las pruebas para observar los abortos
var salir = os.Exit

// fatalInvariante corta el proceso ante una inconsistencia interna de las
// tablas. Continuar corrompería la memoria emulada, no hay recuperación.
func fatalInvariante(motivo string, contexto ...interface{}) {
	utils.ErrorLog.Error("Invariante violada: "+motivo, contexto...)
	salir(1)
}

// fatalRecurso corta el proceso ante una falla de un recurso del sistema
// (archivo de swap, registro de fallos).
func fatalRecurso(motivo string, err error) {
	utils.ErrorLog.Error(motivo, "error", err)
	salir(1)
}
