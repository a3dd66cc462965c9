package main

import (
	"fmt"
	"time"

	"github.com/sisoputnfrba/tp-2025-2c-MemoriaVirtual/utils"
)

// Memoria es la vista del cliente sobre la memoria virtual remota. Las
// pruebas operan contra esta interfaz sin saber dónde vive cada página.
type Memoria interface {
	Leer(direccion int) (int32, error)
	Escribir(direccion int, valor int32) error
}

// AccesoMemoria implementa Memoria contra el administrador por HTTP
type AccesoMemoria struct {
	cliente *utils.HTTPClient
}

func nuevoAccesoMemoria(cliente *utils.HTTPClient) *AccesoMemoria {
	return &AccesoMemoria{cliente: cliente}
}

// Leer pide una palabra al administrador. La llamada bloquea mientras el
// administrador resuelve un eventual fallo de página.
func (a *AccesoMemoria) Leer(direccion int) (int32, error) {
	respuesta, err := a.cliente.EnviarHTTPMensaje(utils.MensajeLeer, "leer", map[string]interface{}{
		"direccion": direccion,
	})
	if err != nil {
		return 0, fmt.Errorf("error al leer la dirección %d: %v", direccion, err)
	}

	datos, err := interpretarRespuesta(respuesta)
	if err != nil {
		return 0, err
	}

	valor, ok := datos["valor"].(float64)
	if !ok {
		return 0, fmt.Errorf("respuesta de lectura sin valor: %v", datos)
	}

	return int32(valor), nil
}

// Escribir almacena una palabra a través del administrador
func (a *AccesoMemoria) Escribir(direccion int, valor int32) error {
	respuesta, err := a.cliente.EnviarHTTPMensaje(utils.MensajeEscribir, "escribir", map[string]interface{}{
		"direccion": direccion,
		"valor":     valor,
	})
	if err != nil {
		return fmt.Errorf("error al escribir la dirección %d: %v", direccion, err)
	}

	_, err = interpretarRespuesta(respuesta)
	return err
}

// AnunciarPrueba avisa al administrador qué prueba va a correr el cliente
func (a *AccesoMemoria) AnunciarPrueba(nombre string) error {
	respuesta, err := a.cliente.EnviarHTTPOperacion("inicio_prueba", map[string]interface{}{
		"tipo": nombre,
	})
	if err != nil {
		return fmt.Errorf("error al anunciar la prueba %s: %v", nombre, err)
	}

	_, err = interpretarRespuesta(respuesta)
	return err
}

// SolicitarVolcado pide al administrador que vuelque su tabla de páginas
func (a *AccesoMemoria) SolicitarVolcado() error {
	respuesta, err := a.cliente.EnviarHTTPMensaje(utils.MensajeVolcadoMemoria, "volcado", map[string]interface{}{})
	if err != nil {
		return fmt.Errorf("error al solicitar el volcado: %v", err)
	}

	_, err = interpretarRespuesta(respuesta)
	return err
}

// ObtenerEstado trae los contadores del administrador
func (a *AccesoMemoria) ObtenerEstado() (map[string]interface{}, error) {
	respuesta, err := a.cliente.EnviarHTTPMensaje(utils.MensajeEstado, "estado", map[string]interface{}{})
	if err != nil {
		return nil, fmt.Errorf("error al consultar el estado: %v", err)
	}

	return interpretarRespuesta(respuesta)
}

// Finalizar pide la terminación del administrador. El administrador puede
// morir antes de responder, en ese caso el error de transporte es esperable.
func (a *AccesoMemoria) Finalizar() {
	_, err := a.cliente.EnviarHTTPMensaje(utils.MensajeFinalizar, "finalizar", map[string]interface{}{})
	if err != nil {
		utils.InfoLog.Warn("El administrador cerró antes de responder la finalización", "error", err)
		return
	}

	utils.InfoLog.Info("Finalización del administrador solicitada")
}

// interpretarRespuesta valida el mapa de respuesta y separa el caso de error
func interpretarRespuesta(respuesta interface{}) (map[string]interface{}, error) {
	datos, ok := respuesta.(map[string]interface{})
	if !ok {
		return nil, fmt.Errorf("respuesta con formato inesperado: %v", respuesta)
	}

	if mensaje, existe := datos["error"].(string); existe {
		return nil, fmt.Errorf("el administrador rechazó el acceso: %s", mensaje)
	}

	return datos, nil
}

// conectarConReintentos insiste hasta que el administrador responda el
// healthcheck y el handshake, y devuelve los datos de geometría de este último.
func conectarConReintentos(cliente *utils.HTTPClient) map[string]interface{} {
	utils.InfoLog.Info("Iniciando conexión", "destino", "Memoria")

	for intento := 1; ; intento++ {
		if err := cliente.VerificarConexion(); err == nil {
			respuesta, err := cliente.EnviarHTTPMensaje(utils.MensajeHandshake, "handshake", map[string]interface{}{
				"nombre": "Cliente",
			})
			if err == nil {
				if datos, ok := respuesta.(map[string]interface{}); ok {
					utils.InfoLog.Info("Conexión establecida", "destino", "Memoria")
					return datos
				}
			}
		}

		utils.InfoLog.Warn("Reintentando conexión",
			"destino", "Memoria",
			"intento", intento,
			"próximo_en", "2s")
		time.Sleep(2 * time.Second)
	}
}
