package main

import (
	"path/filepath"
	"testing"
	"time"
)

func TestBucleAtiendeFallos(t *testing.T) {
	prepararMemoriaConBucle(t, AlgoritmoFIFO)

	// El acceso bloquea hasta que el bucle resuelve el fallo
	if err := escribirPalabra(0, 42); err != nil {
		t.Fatalf("no se pudo escribir la dirección 0: %v", err)
	}

	if tablaPaginas[0].Marco != 0 {
		t.Errorf("la página 0 debería quedar en el marco 0, quedó en %d", tablaPaginas[0].Marco)
	}
	if admin.Fallos != 1 {
		t.Errorf("se esperaba 1 fallo y se contaron %d", admin.Fallos)
	}
	if memoriaFisica[0] != 42 {
		t.Errorf("se esperaba 42 en la primera palabra y hay %d", memoriaFisica[0])
	}
}

func TestBucleAtiendeVolcados(t *testing.T) {
	prepararMemoriaConBucle(t, AlgoritmoFIFO)

	notificaciones <- NotificacionVolcado

	// El volcado corre en el bucle, se espera a que el archivo aparezca
	patron := filepath.Join(config.DumpPath, "tabla-*.dmp")
	limite := time.Now().Add(2 * time.Second)
	for time.Now().Before(limite) {
		if archivos, _ := filepath.Glob(patron); len(archivos) > 0 {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatal("el bucle no generó el archivo de volcado a tiempo")
}
