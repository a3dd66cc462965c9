package main

import (
	"errors"
	"fmt"
	"testing"

	"github.com/sisoputnfrba/tp-2025-2c-MemoriaVirtual/utils"
)

var errAccesoRechazado = errors.New("acceso rechazado por la memoria")

// memoriaMapa implementa Memoria sobre un mapa local, sin administrador
type memoriaMapa struct {
	datos  map[int]int32
	limite int
}

func nuevaMemoriaMapa(limite int) *memoriaMapa {
	return &memoriaMapa{datos: make(map[int]int32), limite: limite}
}

func (m *memoriaMapa) Leer(direccion int) (int32, error) {
	if direccion < 0 || direccion >= m.limite {
		return 0, fmt.Errorf("%w: dirección %d", errAccesoRechazado, direccion)
	}
	return m.datos[direccion], nil
}

func (m *memoriaMapa) Escribir(direccion int, valor int32) error {
	if direccion < 0 || direccion >= m.limite {
		return fmt.Errorf("%w: dirección %d", errAccesoRechazado, direccion)
	}
	m.datos[direccion] = valor
	return nil
}

func prepararPrueba(t *testing.T, cfg *ClienteConfig) {
	t.Helper()
	utils.InicializarLogger("error", "Cliente-Test")
	config = cfg
}

func TestPruebaSecuencial(t *testing.T) {
	prepararPrueba(t, &ClienteConfig{Prueba: "secuencial"})
	mem := nuevaMemoriaMapa(64)

	if err := ejecutarPrueba(mem, 64); err != nil {
		t.Fatalf("la prueba secuencial no debería fallar: %v", err)
	}

	for direccion := 0; direccion < 64; direccion++ {
		if mem.datos[direccion] != valorPatron(direccion) {
			t.Fatalf("dirección %d: se esperaba %d y quedó %d",
				direccion, valorPatron(direccion), mem.datos[direccion])
		}
	}
}

func TestPruebaOrdenamiento(t *testing.T) {
	prepararPrueba(t, &ClienteConfig{
		Prueba:            "ordenamiento",
		CantidadElementos: 50,
		Semilla:           7,
	})
	mem := nuevaMemoriaMapa(64)

	if err := ejecutarPrueba(mem, 64); err != nil {
		t.Fatalf("la prueba de ordenamiento no debería fallar: %v", err)
	}

	for i := 1; i < 50; i++ {
		if mem.datos[i] < mem.datos[i-1] {
			t.Fatalf("posición %d: %d quedó después de %d", i, mem.datos[i], mem.datos[i-1])
		}
	}
}

func TestPruebaAleatoria(t *testing.T) {
	prepararPrueba(t, &ClienteConfig{
		Prueba:          "aleatorio",
		CantidadAccesos: 500,
		Semilla:         42,
	})

	if err := ejecutarPrueba(nuevaMemoriaMapa(64), 64); err != nil {
		t.Fatalf("la prueba aleatoria no debería fallar: %v", err)
	}
}

func TestPruebaPropagaErrores(t *testing.T) {
	prepararPrueba(t, &ClienteConfig{Prueba: "secuencial"})

	// La memoria termina antes que el espacio informado
	err := ejecutarPrueba(nuevaMemoriaMapa(8), 64)
	if !errors.Is(err, errAccesoRechazado) {
		t.Fatalf("se esperaba el rechazo de la memoria y se obtuvo %v", err)
	}
}

func TestEjecutarPruebaDesconocida(t *testing.T) {
	prepararPrueba(t, &ClienteConfig{Prueba: "inexistente"})

	err := ejecutarPrueba(nuevaMemoriaMapa(8), 8)
	if err == nil {
		t.Fatal("una prueba desconocida debería fallar")
	}
}

func TestEjecutarPruebaRecortaElEspacio(t *testing.T) {
	prepararPrueba(t, &ClienteConfig{
		Prueba:            "ordenamiento",
		CantidadElementos: 9999,
		Semilla:           1,
	})

	// Si la cantidad no se recortara al espacio, la memoria rechazaría
	// los accesos más allá del límite
	if err := ejecutarPrueba(nuevaMemoriaMapa(32), 32); err != nil {
		t.Fatalf("la cantidad debería recortarse al espacio disponible: %v", err)
	}
}
