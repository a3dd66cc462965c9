package main

import (
	"fmt"

	"github.com/sisoputnfrba/tp-2025-2c-MemoriaVirtual/utils"
)

// estadoActual arma la foto de contadores que expone el mensaje de estado
func estadoActual() map[string]interface{} {
	marcosLibres := 0
	for _, pagina := range tablaMarcos {
		if pagina == PaginaInvalida {
			marcosLibres++
		}
	}

	return map[string]interface{}{
		"algoritmo":       admin.Algoritmo,
		"fallos":          admin.Fallos,
		"accesos":         admin.Accesos,
		"desalojos":       admin.Desalojos,
		"marcos_libres":   marcosLibres,
		"marcos_ocupados": admin.CantMarcos - marcosLibres,
		"paginas":         admin.CantPaginas,
		"tam_pagina":      admin.TamPagina,
		"pid":             admin.PIDManager,
	}
}

// logResumenFinal registra las métricas acumuladas al finalizar el administrador
func logResumenFinal() {
	utils.InfoLog.Info(fmt.Sprintf("## Administrador finalizado - Métricas: Fallos;%d;Accesos;%d;Desalojos;%d",
		admin.Fallos, admin.Accesos, admin.Desalojos))
}
