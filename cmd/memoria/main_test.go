package main

import (
	"encoding/binary"
	"path/filepath"
	"testing"

	"github.com/sisoputnfrba/tp-2025-2c-MemoriaVirtual/utils"
)

// prepararMemoria arma un administrador chico para pruebas: 8 páginas de 8
// palabras sobre 4 marcos.
func prepararMemoria(t *testing.T, algoritmo string) {
	t.Helper()

	dir := t.TempDir()
	config = &MemoriaConfig{
		IPMemoria:               "127.0.0.1",
		PuertoMemoria:           0,
		LogLevel:                "error",
		TamVirtual:              64,
		TamFisico:               32,
		TamPagina:               8,
		Algoritmo:               algoritmo,
		IntervaloEnvejecimiento: 4,
		RetardoMemoria:          0,
		RetardoSwap:             0,
		SwapfilePath:            filepath.Join(dir, "pagefile.bin"),
		DumpPath:                filepath.Join(dir, "dumps"),
		RegistroFallosPath:      filepath.Join(dir, "fallos.log"),
	}

	utils.InicializarLogger(config.LogLevel, "Memoria-Test")
	inicializarMemoriaVirtual()
	t.Cleanup(limpiar)
}

// prepararMemoriaConBucle además corre el bucle principal en segundo plano
// para que los accesos puedan resolver sus fallos.
func prepararMemoriaConBucle(t *testing.T, algoritmo string) {
	t.Helper()
	prepararMemoria(t, algoritmo)

	go buclePrincipal()
	t.Cleanup(func() { close(notificaciones) })
}

// provocarFallo simula la llegada de un fallo por la página dada y lo
// atiende en el acto, como lo haría el bucle principal.
func provocarFallo(t *testing.T, pagina int) {
	t.Helper()

	admin.PaginaSolicitada = pagina
	asignarPagina()

	if !paginaLista.TryWait() {
		t.Fatalf("asignarPagina no liberó el semáforo para la página %d", pagina)
	}
}

// verificarConsistenciaTablas chequea que la tabla de páginas y la tabla de
// marcos cuenten la misma historia.
func verificarConsistenciaTablas(t *testing.T) {
	t.Helper()

	for marco, pagina := range tablaMarcos {
		if pagina == PaginaInvalida {
			continue
		}
		if tablaPaginas[pagina].Marco != marco {
			t.Errorf("el marco %d aloja la página %d pero la entrada apunta al marco %d",
				marco, pagina, tablaPaginas[pagina].Marco)
		}
	}

	vistos := make(map[int]int)
	for pagina := range tablaPaginas {
		marco := tablaPaginas[pagina].Marco
		if marco == MarcoInvalido {
			continue
		}
		if otra, repetido := vistos[marco]; repetido {
			t.Errorf("las páginas %d y %d comparten el marco %d", otra, pagina, marco)
		}
		vistos[marco] = pagina
		if tablaMarcos[marco] != pagina {
			t.Errorf("la página %d dice estar en el marco %d pero el marco aloja %d",
				pagina, marco, tablaMarcos[marco])
		}
	}
}

// leerSlotDeSwap decodifica el slot completo de una página del archivo de swap
func leerSlotDeSwap(t *testing.T, pagina int) []Palabra {
	t.Helper()

	buffer := make([]byte, admin.TamPagina*TamanioPalabra)
	if _, err := archivoSwap.ReadAt(buffer, offsetSwap(pagina)); err != nil {
		t.Fatalf("no se pudo leer el slot de la página %d: %v", pagina, err)
	}

	palabras := make([]Palabra, admin.TamPagina)
	for i := range palabras {
		palabras[i] = Palabra(binary.LittleEndian.Uint32(buffer[i*TamanioPalabra:]))
	}
	return palabras
}
