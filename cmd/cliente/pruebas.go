package main

import (
	"fmt"
	"math/rand"

	"github.com/sisoputnfrba/tp-2025-2c-MemoriaVirtual/utils"
)

// ejecutarPrueba despacha la prueba elegida en la configuración
func ejecutarPrueba(mem Memoria, espacio int) error {
	switch config.Prueba {
	case "secuencial":
		return pruebaSecuencial(mem, espacio)
	case "ordenamiento":
		cantidad := config.CantidadElementos
		if cantidad <= 0 || cantidad > espacio {
			cantidad = espacio
		}
		return pruebaOrdenamiento(mem, cantidad, config.Semilla)
	case "aleatorio":
		return pruebaAleatoria(mem, espacio, config.CantidadAccesos, config.Semilla)
	}

	return fmt.Errorf("prueba desconocida: %s", config.Prueba)
}

// pruebaSecuencial escribe un patrón conocido en todo el espacio virtual y
// lo vuelve a leer verificando cada palabra.
func pruebaSecuencial(mem Memoria, espacio int) error {
	for direccion := 0; direccion < espacio; direccion++ {
		if err := mem.Escribir(direccion, valorPatron(direccion)); err != nil {
			return err
		}
	}

	for direccion := 0; direccion < espacio; direccion++ {
		valor, err := mem.Leer(direccion)
		if err != nil {
			return err
		}
		if valor != valorPatron(direccion) {
			return fmt.Errorf("dirección %d: se esperaba %d y se leyó %d",
				direccion, valorPatron(direccion), valor)
		}
	}

	utils.InfoLog.Info("Recorrido secuencial verificado", "palabras", espacio)
	return nil
}

func valorPatron(direccion int) int32 {
	return int32(direccion*7 + 3)
}

// pruebaOrdenamiento llena el comienzo del espacio con valores
// pseudoaleatorios, los ordena por selección operando siempre a través de la
// memoria virtual y verifica que el resultado quede ascendente.
func pruebaOrdenamiento(mem Memoria, cantidad int, semilla int64) error {
	generador := rand.New(rand.NewSource(semilla))

	for i := 0; i < cantidad; i++ {
		if err := mem.Escribir(i, int32(generador.Intn(10000))); err != nil {
			return err
		}
	}

	// Cada comparación e intercambio pasa por la memoria virtual
	for i := 0; i < cantidad-1; i++ {
		minimo := i
		valorMinimo, err := mem.Leer(i)
		if err != nil {
			return err
		}

		for j := i + 1; j < cantidad; j++ {
			valor, err := mem.Leer(j)
			if err != nil {
				return err
			}
			if valor < valorMinimo {
				minimo = j
				valorMinimo = valor
			}
		}

		if minimo != i {
			valorActual, err := mem.Leer(i)
			if err != nil {
				return err
			}
			if err := mem.Escribir(i, valorMinimo); err != nil {
				return err
			}
			if err := mem.Escribir(minimo, valorActual); err != nil {
				return err
			}
		}
	}

	anterior, err := mem.Leer(0)
	if err != nil {
		return err
	}
	for i := 1; i < cantidad; i++ {
		valor, err := mem.Leer(i)
		if err != nil {
			return err
		}
		if valor < anterior {
			return fmt.Errorf("posición %d: %d quedó después de %d", i, valor, anterior)
		}
		anterior = valor
	}

	utils.InfoLog.Info("Ordenamiento verificado", "elementos", cantidad)
	return nil
}

// pruebaAleatoria mezcla lecturas y escrituras en direcciones al azar y
// contrasta cada lectura contra una copia local.
func pruebaAleatoria(mem Memoria, espacio, accesos int, semilla int64) error {
	if accesos <= 0 {
		return fmt.Errorf("CANTIDAD_ACCESOS debe ser positivo: %d", accesos)
	}

	generador := rand.New(rand.NewSource(semilla))
	copiaLocal := make(map[int]int32)

	for i := 0; i < accesos; i++ {
		direccion := generador.Intn(espacio)

		if generador.Intn(2) == 0 {
			valor := int32(generador.Intn(100000))
			if err := mem.Escribir(direccion, valor); err != nil {
				return err
			}
			copiaLocal[direccion] = valor
		} else {
			valor, err := mem.Leer(direccion)
			if err != nil {
				return err
			}
			esperado := copiaLocal[direccion] // cero si nunca se escribió
			if valor != esperado {
				return fmt.Errorf("dirección %d: se esperaba %d y se leyó %d",
					direccion, esperado, valor)
			}
		}
	}

	utils.InfoLog.Info("Prueba aleatoria verificada", "accesos", accesos)
	return nil
}
