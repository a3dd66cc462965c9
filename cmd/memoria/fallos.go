package main

import (
	"fmt"
	"strconv"

	"github.com/sisoputnfrba/tp-2025-2c-MemoriaVirtual/utils"
)

// asignarPagina atiende un fallo de página: consigue un marco libre o por
// desalojo, trae la página solicitada cuando corresponde, actualiza las dos
// tablas y despierta al acceso bloqueado. Corre siempre en el bucle principal.
func asignarPagina() {
	pagina := admin.PaginaSolicitada
	if pagina == PaginaInvalida {
		fatalInvariante("fallo notificado sin página solicitada")
	}
	if pagina < 0 || pagina >= admin.CantPaginas {
		fatalInvariante("página solicitada fuera de rango", "pagina", pagina)
	}

	admin.Fallos++

	desalojada := PaginaInvalida
	marco := buscarMarcoLibre()
	if marco == MarcoInvalido {
		marco = seleccionarVictima()
		if marco < 0 || marco >= admin.CantMarcos {
			fatalInvariante("el algoritmo de reemplazo devolvió un marco inválido", "marco", marco)
		}

		desalojada = tablaMarcos[marco]
		if desalojada < 0 || desalojada >= admin.CantPaginas {
			fatalInvariante("marco víctima sin página asociada", "marco", marco, "pagina", desalojada)
		}

		desalojarPagina(desalojada, marco)

		// La página entrante se trae desde swap únicamente en el camino
		// con desalojo; un marco que nunca se usó ya contiene ceros.
		if err := traerDeSwap(pagina, marco); err != nil {
			fatalRecurso("Error trayendo página desde swap", err)
		}

		admin.Desalojos++
	}

	tablaMarcos[marco] = pagina
	tablaPaginas[pagina].Marco = marco

	admin.PaginaSolicitada = PaginaInvalida

	registrarFallo(pagina, marco, desalojada)
	utils.InfoLog.Info(fmt.Sprintf("## Fallo de página atendido - Página: %d - Marco: %d - Desalojada: %s",
		pagina, marco, formatearPagina(desalojada)))

	paginaLista.Signal()
}

// buscarMarcoLibre devuelve el marco libre de menor índice o MarcoInvalido
func buscarMarcoLibre() int {
	for marco, pagina := range tablaMarcos {
		if pagina == PaginaInvalida {
			return marco
		}
	}
	return MarcoInvalido
}

// desalojarPagina saca una página de memoria: escribe su contenido en swap
// solo si está modificada y deja la entrada no residente y sin flags.
func desalojarPagina(pagina, marco int) {
	entrada := &tablaPaginas[pagina]

	if entrada.Flags&FlagModificada != 0 {
		if err := moverASwap(pagina, marco); err != nil {
			fatalRecurso("Error moviendo página a swap", err)
		}
	}

	entrada.Marco = MarcoInvalido
	entrada.Flags = 0
	tablaMarcos[marco] = PaginaInvalida
}

func formatearPagina(pagina int) string {
	if pagina == PaginaInvalida {
		return "-"
	}
	return strconv.Itoa(pagina)
}
