package main

import (
	"os"

	"github.com/sisoputnfrba/tp-2025-2c-MemoriaVirtual/utils"
)

// inicializarMemoriaVirtual construye el arena completo del administrador:
// tabla de páginas, tabla de marcos, memoria física, área de swap, registro
// de fallos y los mecanismos de sincronización del protocolo de fallos.
func inicializarMemoriaVirtual() {
	admin = BloqueAdmin{
		TamVirtual:       config.TamVirtual,
		CantPaginas:      config.TamVirtual / config.TamPagina,
		CantMarcos:       config.TamFisico / config.TamPagina,
		TamPagina:        config.TamPagina,
		PaginaSolicitada: PaginaInvalida,
		PIDManager:       os.Getpid(),
		Algoritmo:        config.Algoritmo,
		Puntero:          -1,
	}

	tablaPaginas = make([]EntradaPagina, admin.CantPaginas)
	for i := range tablaPaginas {
		tablaPaginas[i] = EntradaPagina{
			Marco: MarcoInvalido,
			Edad:  EdadInicial,
		}
	}

	tablaMarcos = make([]int, admin.CantMarcos)
	for i := range tablaMarcos {
		tablaMarcos[i] = PaginaInvalida
	}

	memoriaFisica = make([]Palabra, config.TamFisico)

	notificaciones = make(chan Notificacion, 8)
	paginaLista = utils.NewSemaforo(0, 1)

	if err := inicializarAreaSwap(); err != nil {
		utils.ErrorLog.Error("Error al inicializar el área de swap", "error", err)
		os.Exit(1)
	}

	if err := abrirRegistroFallos(); err != nil {
		utils.ErrorLog.Error("Error al abrir el registro de fallos", "error", err)
		os.Exit(1)
	}

	utils.InfoLog.Info("Memoria virtual inicializada",
		"paginas", admin.CantPaginas,
		"marcos", admin.CantMarcos,
		"tam_pagina", admin.TamPagina,
		"algoritmo", admin.Algoritmo)
}

// limpiar libera los recursos del administrador al finalizar
func limpiar() {
	cerrarAreaSwap()
	cerrarRegistroFallos()
}
