package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRenderizarTablaPaginas(t *testing.T) {
	prepararMemoria(t, AlgoritmoClock)

	provocarFallo(t, 3)
	tablaPaginas[3].Flags |= FlagReferencia | FlagModificada

	salida := renderizarTablaPaginas()

	if !strings.Contains(salida, "Algoritmo CLOCK") {
		t.Error("el encabezado debería nombrar el algoritmo activo")
	}
	if !strings.Contains(salida, "Fallos 1 |") {
		t.Errorf("el encabezado debería mostrar el fallo contado:\n%s", salida)
	}
	if !strings.Contains(salida, "0x80") {
		t.Error("las edades deberían mostrarse en hexadecimal")
	}

	// Una sola página residente entre las ocho
	if n := strings.Count(salida, "true"); n != 1 {
		t.Errorf("se esperaba 1 página presente y se muestran %d", n)
	}
	if n := strings.Count(salida, "false"); n != admin.CantPaginas-1 {
		t.Errorf("se esperaban %d páginas ausentes y se muestran %d", admin.CantPaginas-1, n)
	}

	lineas := strings.Split(strings.TrimRight(salida, "\n"), "\n")
	if len(lineas) != 3+admin.CantPaginas {
		t.Errorf("se esperaban %d líneas y hay %d", 3+admin.CantPaginas, len(lineas))
	}
}

func TestVolcadoDeTablaDePaginas(t *testing.T) {
	prepararMemoria(t, AlgoritmoClock)

	provocarFallo(t, 0)
	provocarFallo(t, 1)

	volcarTablaPaginas()

	archivos, err := filepath.Glob(filepath.Join(config.DumpPath, "tabla-*.dmp"))
	if err != nil {
		t.Fatalf("no se pudo listar el directorio de dumps: %v", err)
	}
	if len(archivos) != 1 {
		t.Fatalf("se esperaba 1 archivo de volcado y hay %d", len(archivos))
	}

	contenido, err := os.ReadFile(archivos[0])
	if err != nil {
		t.Fatalf("no se pudo leer el volcado: %v", err)
	}

	texto := string(contenido)
	if !strings.Contains(texto, "Fallos 2 |") {
		t.Errorf("el volcado debería registrar los 2 fallos:\n%s", texto)
	}
	if !strings.Contains(texto, "Algoritmo CLOCK") {
		t.Error("el volcado debería nombrar el algoritmo")
	}
}
