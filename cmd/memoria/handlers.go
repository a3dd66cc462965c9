package main

import (
	"fmt"

	"github.com/sisoputnfrba/tp-2025-2c-MemoriaVirtual/utils"
)

// handlerHandshake responde la geometría de la memoria al cliente
func handlerHandshake(msg *utils.Mensaje) (interface{}, error) {
	utils.InfoLog.Info("Handshake recibido", "origen", msg.Origen)

	return map[string]interface{}{
		"status":      "OK",
		"tam_pagina":  admin.TamPagina,
		"paginas":     admin.CantPaginas,
		"marcos":      admin.CantMarcos,
		"algoritmo":   admin.Algoritmo,
		"pid_manager": admin.PIDManager,
	}, nil
}

func handlerOperacion(msg *utils.Mensaje) (interface{}, error) {
	return utils.HandlerGenerico(msg, config.RetardoMemoria, procesarOperacion)
}

func procesarOperacion(msg *utils.Mensaje) (interface{}, error) {
	tipoOperacion := utils.ObtenerTipoOperacion(msg, "memoria")
	utils.InfoLog.Info("Operación procesada", "tipo", tipoOperacion)

	return map[string]interface{}{
		"status":  "OK",
		"mensaje": "Operación de memoria completada exitosamente",
	}, nil
}

// handlerLeer atiende la lectura de una palabra de la memoria virtual
func handlerLeer(msg *utils.Mensaje) (interface{}, error) {
	datos, ok := msg.Datos.(map[string]interface{})
	if !ok {
		utils.ErrorLog.Error("Formato de datos incorrecto", "datos", msg.Datos)
		return map[string]interface{}{"error": "Formato de datos incorrecto"}, nil
	}

	direccion, ok := datos["direccion"].(float64)
	if !ok {
		utils.ErrorLog.Error("Dirección no proporcionada", "datos", datos)
		return map[string]interface{}{"error": "Dirección no proporcionada o formato incorrecto"}, nil
	}

	utils.AplicarRetardo("lectura", config.RetardoMemoria)

	valor, err := leerPalabra(int(direccion))
	if err != nil {
		utils.ErrorLog.Error("Error leyendo de memoria virtual", "direccion", int(direccion), "error", err)
		return map[string]interface{}{"error": err.Error()}, nil
	}

	utils.InfoLog.Info(fmt.Sprintf("## Lectura - Dirección: %d - Valor: %d", int(direccion), valor))

	return map[string]interface{}{
		"status": "OK",
		"valor":  int(valor),
	}, nil
}

// handlerEscribir atiende la escritura de una palabra en la memoria virtual
func handlerEscribir(msg *utils.Mensaje) (interface{}, error) {
	datos, ok := msg.Datos.(map[string]interface{})
	if !ok {
		utils.ErrorLog.Error("Formato de datos incorrecto", "datos", msg.Datos)
		return map[string]interface{}{"error": "Formato de datos incorrecto"}, nil
	}

	direccion, ok := datos["direccion"].(float64)
	if !ok {
		utils.ErrorLog.Error("Dirección no proporcionada", "datos", datos)
		return map[string]interface{}{"error": "Dirección no proporcionada o formato incorrecto"}, nil
	}

	valor, ok := datos["valor"].(float64)
	if !ok {
		utils.ErrorLog.Error("Valor no proporcionado", "datos", datos)
		return map[string]interface{}{"error": "Valor no proporcionado o formato incorrecto"}, nil
	}

	utils.AplicarRetardo("escritura", config.RetardoMemoria)

	if err := escribirPalabra(int(direccion), Palabra(valor)); err != nil {
		utils.ErrorLog.Error("Error escribiendo en memoria virtual", "direccion", int(direccion), "error", err)
		return map[string]interface{}{"error": err.Error()}, nil
	}

	utils.InfoLog.Info(fmt.Sprintf("## Escritura - Dirección: %d - Valor: %d", int(direccion), Palabra(valor)))

	return map[string]interface{}{
		"status": "OK",
	}, nil
}

// handlerVolcado encola un volcado de la tabla de páginas. El volcado en sí
// lo escribe el bucle principal.
func handlerVolcado(msg *utils.Mensaje) (interface{}, error) {
	utils.InfoLog.Info("Solicitud de volcado recibida", "origen", msg.Origen)

	notificaciones <- NotificacionVolcado

	return map[string]interface{}{
		"status": "solicitado",
	}, nil
}

// handlerEstado devuelve los contadores del bloque administrativo
func handlerEstado(msg *utils.Mensaje) (interface{}, error) {
	utils.AplicarRetardo("estado", config.RetardoMemoria)

	respuesta := estadoActual()
	respuesta["status"] = "OK"
	return respuesta, nil
}

// handlerFinalizar encola la finalización del administrador
func handlerFinalizar(msg *utils.Mensaje) (interface{}, error) {
	utils.InfoLog.Info("Solicitud de finalización recibida", "origen", msg.Origen)

	notificaciones <- NotificacionFin

	return map[string]interface{}{
		"status": "OK",
	}, nil
}
