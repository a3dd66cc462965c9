package main

import (
	"errors"
	"fmt"
)

// errDireccionInvalida marca un acceso fuera del espacio virtual. El
// administrador queda intacto; el cliente que accedió es quien debe morir.
var errDireccionInvalida = errors.New("dirección fuera del espacio virtual")

// leerPalabra traduce una dirección virtual y devuelve la palabra almacenada.
// Si la página no está residente bloquea hasta que el bucle principal
// resuelva el fallo.
func leerPalabra(direccion int) (Palabra, error) {
	accesoMutex.Lock()
	defer accesoMutex.Unlock()

	fisica, err := accederPagina(direccion, false)
	if err != nil {
		return 0, err
	}

	valor := memoriaFisica[fisica]
	registrarAcceso()
	return valor, nil
}

// escribirPalabra traduce una dirección virtual y almacena la palabra dada.
func escribirPalabra(direccion int, valor Palabra) error {
	accesoMutex.Lock()
	defer accesoMutex.Unlock()

	fisica, err := accederPagina(direccion, true)
	if err != nil {
		return err
	}

	memoriaFisica[fisica] = valor
	registrarAcceso()
	return nil
}

// accederPagina descompone la dirección, marca los flags del acceso y
// garantiza que la página quede residente. Devuelve el índice de la palabra
// dentro de memoriaFisica.
func accederPagina(direccion int, escritura bool) (int, error) {
	if direccion < 0 || direccion >= admin.TamVirtual {
		return 0, fmt.Errorf("%w: %d", errDireccionInvalida, direccion)
	}

	pagina := direccion / admin.TamPagina
	offset := direccion % admin.TamPagina

	entrada := &tablaPaginas[pagina]
	entrada.Flags |= FlagReferencia
	if escritura {
		entrada.Flags |= FlagModificada
	}

	if entrada.Marco == MarcoInvalido {
		solicitarCarga(pagina)
	}

	marco := entrada.Marco
	if marco < 0 || marco >= admin.CantMarcos {
		fatalInvariante("marco fuera de rango tras resolver el fallo", "pagina", pagina, "marco", marco)
	}

	fisica := marco*admin.TamPagina + offset
	if fisica < 0 || fisica >= len(memoriaFisica) {
		fatalInvariante("dirección física fuera de rango", "pagina", pagina, "marco", marco, "fisica", fisica)
	}

	return fisica, nil
}

// solicitarCarga publica el número de página en el bloque administrativo,
// avisa al bucle principal y espera a que la página quede residente.
func solicitarCarga(pagina int) {
	if admin.PaginaSolicitada != PaginaInvalida {
		fatalInvariante("ya hay un fallo de página en curso", "pendiente", admin.PaginaSolicitada, "pagina", pagina)
	}

	admin.PaginaSolicitada = pagina
	notificaciones <- NotificacionFallo
	paginaLista.Wait()
}

// registrarAcceso incrementa el contador global de accesos y dispara la
// pasada de envejecimiento cuando corresponde.
func registrarAcceso() {
	admin.Accesos++
	if admin.Algoritmo == AlgoritmoAging && admin.Accesos%config.IntervaloEnvejecimiento == 0 {
		envejecerPaginas()
	}
}
