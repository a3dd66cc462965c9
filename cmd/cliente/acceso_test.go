package main

import (
	"net"
	"testing"

	"github.com/sisoputnfrba/tp-2025-2c-MemoriaVirtual/utils"
)

// iniciarMemoriaFalsa levanta un administrador de mentira en un puerto
// efímero y devuelve un cliente HTTP apuntado a él.
func iniciarMemoriaFalsa(t *testing.T, handlers map[int]utils.HTTPHandlerFunc) *utils.HTTPClient {
	t.Helper()
	utils.InicializarLogger("error", "Cliente-Test")

	listener, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("no se pudo abrir un puerto efímero: %v", err)
	}
	t.Cleanup(func() { listener.Close() })

	servidor := utils.NewHTTPServer("127.0.0.1", 0, "Memoria-Falsa")
	servidor.Listener = listener
	for tipo, handler := range handlers {
		servidor.RegisterHTTPHandler(tipo, handler)
	}
	go servidor.Start()

	puerto := listener.Addr().(*net.TCPAddr).Port
	return utils.NewHTTPClient("127.0.0.1", puerto, "Cliente-Test")
}

func TestConectarConReintentos(t *testing.T) {
	cliente := iniciarMemoriaFalsa(t, map[int]utils.HTTPHandlerFunc{
		utils.MensajeHandshake: func(msg *utils.Mensaje) (interface{}, error) {
			return map[string]interface{}{
				"status":     "OK",
				"tam_pagina": 8,
				"paginas":    8,
				"marcos":     4,
			}, nil
		},
	})

	// El healthcheck y el handshake responden al primer intento
	datos := conectarConReintentos(cliente)

	if espacio := espacioVirtual(datos); espacio != 64 {
		t.Errorf("se esperaba un espacio de 64 palabras y se calculó %d", espacio)
	}
}

func TestAnunciarPrueba(t *testing.T) {
	var recibido *utils.Mensaje
	cliente := iniciarMemoriaFalsa(t, map[int]utils.HTTPHandlerFunc{
		utils.MensajeOperacion: func(msg *utils.Mensaje) (interface{}, error) {
			recibido = msg
			return map[string]interface{}{"status": "OK"}, nil
		},
	})

	acceso := nuevoAccesoMemoria(cliente)
	if err := acceso.AnunciarPrueba("secuencial"); err != nil {
		t.Fatalf("anunciar la prueba no debería fallar: %v", err)
	}

	if recibido == nil {
		t.Fatal("el administrador debería recibir el mensaje de operación")
	}
	if recibido.Operacion != "inicio_prueba" {
		t.Errorf("se esperaba la operación inicio_prueba y llegó %q", recibido.Operacion)
	}
	datos, ok := recibido.Datos.(map[string]interface{})
	if !ok || datos["tipo"] != "secuencial" {
		t.Errorf("los datos deberían nombrar la prueba: %v", recibido.Datos)
	}
}

func TestAnunciarPruebaSinAdministrador(t *testing.T) {
	utils.InicializarLogger("error", "Cliente-Test")

	// Puerto sin nadie escuchando
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("no se pudo abrir un puerto efímero: %v", err)
	}
	puerto := listener.Addr().(*net.TCPAddr).Port
	listener.Close()

	acceso := nuevoAccesoMemoria(utils.NewHTTPClient("127.0.0.1", puerto, "Cliente-Test"))
	if err := acceso.AnunciarPrueba("secuencial"); err == nil {
		t.Error("anunciar sin administrador debería fallar")
	}
}
