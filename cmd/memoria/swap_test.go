package main

import "testing"

func TestSwapSlotsFijos(t *testing.T) {
	prepararMemoria(t, AlgoritmoFIFO)

	info, err := archivoSwap.Stat()
	if err != nil {
		t.Fatalf("no se pudo consultar el archivo de swap: %v", err)
	}

	esperado := int64(admin.CantPaginas * admin.TamPagina * TamanioPalabra)
	if info.Size() != esperado {
		t.Errorf("el archivo debería medir %d bytes y mide %d", esperado, info.Size())
	}

	tamanioSlot := int64(admin.TamPagina * TamanioPalabra)
	for pagina := 0; pagina < admin.CantPaginas; pagina++ {
		if offsetSwap(pagina) != int64(pagina)*tamanioSlot {
			t.Errorf("la página %d debería empezar en el byte %d, empieza en %d",
				pagina, int64(pagina)*tamanioSlot, offsetSwap(pagina))
		}
	}
}

func TestSwapNaceEnCeros(t *testing.T) {
	prepararMemoria(t, AlgoritmoFIFO)

	for pagina := 0; pagina < admin.CantPaginas; pagina++ {
		for i, palabra := range leerSlotDeSwap(t, pagina) {
			if palabra != 0 {
				t.Fatalf("el slot %d debería nacer en ceros, palabra %d = %d", pagina, i, palabra)
			}
		}
	}
}

func TestSwapIdaYVuelta(t *testing.T) {
	prepararMemoria(t, AlgoritmoFIFO)

	// Valores negativos para cubrir el viaje por complemento a dos
	base := 2 * admin.TamPagina
	for i := 0; i < admin.TamPagina; i++ {
		memoriaFisica[base+i] = Palabra(-100 - i)
	}

	if err := moverASwap(6, 2); err != nil {
		t.Fatalf("no se pudo mover el marco 2 a swap: %v", err)
	}
	if err := traerDeSwap(6, 1); err != nil {
		t.Fatalf("no se pudo traer la página 6 de swap: %v", err)
	}

	base = 1 * admin.TamPagina
	for i := 0; i < admin.TamPagina; i++ {
		if memoriaFisica[base+i] != Palabra(-100-i) {
			t.Errorf("palabra %d: se esperaba %d y se leyó %d", i, -100-i, memoriaFisica[base+i])
		}
	}
}

func TestSwapPaginaFueraDeRango(t *testing.T) {
	prepararMemoria(t, AlgoritmoFIFO)

	if err := moverASwap(99, 0); err == nil {
		t.Error("mover la página 99 debería fallar")
	}
	if err := traerDeSwap(-1, 0); err == nil {
		t.Error("traer la página -1 debería fallar")
	}
}
