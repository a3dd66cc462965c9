package main

import (
	"os"
	"os/signal"
	"syscall"
)

// buclePrincipal atiende los avisos del administrador: fallos de página,
// volcados y la finalización. Una vez iniciado el servidor es el único que
// muta la estructura de las tablas; los accesos solo tocan flags y datos.
func buclePrincipal() {
	for notificacion := range notificaciones {
		switch notificacion {
		case NotificacionFallo:
			asignarPagina()
		case NotificacionVolcado:
			volcarTablaPaginas()
		case NotificacionFin:
			finalizarAdministrador()
		default:
			fatalInvariante("notificación desconocida", "notificacion", int(notificacion))
		}
	}
}

// instalarSenales reenvía las señales del operador al bucle principal.
// SIGUSR2 pide un volcado; SIGINT y SIGTERM finalizan el administrador.
func instalarSenales() {
	senales := make(chan os.Signal, 1)
	signal.Notify(senales, syscall.SIGUSR2, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		for senal := range senales {
			switch senal {
			case syscall.SIGUSR2:
				notificaciones <- NotificacionVolcado
			default:
				notificaciones <- NotificacionFin
			}
		}
	}()
}

// finalizarAdministrador libera los recursos y termina el proceso
func finalizarAdministrador() {
	logResumenFinal()
	limpiar()
	os.Exit(0)
}
