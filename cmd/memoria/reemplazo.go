package main

// seleccionarVictima elige el marco a desalojar según el algoritmo activo.
// Solo se llama cuando no quedan marcos libres.
func seleccionarVictima() int {
	switch admin.Algoritmo {
	case AlgoritmoFIFO:
		return seleccionarVictimaFIFO()
	case AlgoritmoClock:
		return seleccionarVictimaClock()
	case AlgoritmoAging:
		return seleccionarVictimaEnvejecimiento()
	}

	fatalInvariante("algoritmo de reemplazo desconocido", "algoritmo", admin.Algoritmo)
	return MarcoInvalido
}

// seleccionarVictimaFIFO avanza el puntero circular y desaloja el marco
// apuntado sin inspeccionar flags.
func seleccionarVictimaFIFO() int {
	admin.Puntero = (admin.Puntero + 1) % admin.CantMarcos
	return admin.Puntero
}

// seleccionarVictimaClock recorre los marcos con el mismo puntero circular
// que FIFO dando una segunda oportunidad: si la página apuntada tiene el bit
// de referencia lo limpia y sigue; la primera sin referencia es la víctima.
func seleccionarVictimaClock() int {
	for {
		admin.Puntero = (admin.Puntero + 1) % admin.CantMarcos

		pagina := tablaMarcos[admin.Puntero]
		if pagina == PaginaInvalida {
			fatalInvariante("marco libre durante el reemplazo", "marco", admin.Puntero)
		}

		entrada := &tablaPaginas[pagina]
		if entrada.Flags&FlagReferencia != 0 {
			entrada.Flags &^= FlagReferencia
			continue
		}

		return admin.Puntero
	}
}

// seleccionarVictimaEnvejecimiento recorre los marcos en orden ascendente y
// elige la página de menor edad; ante empate gana el marco de menor índice.
// La edad de la víctima se reinicia para su próxima residencia.
func seleccionarVictimaEnvejecimiento() int {
	marcoVictima := MarcoInvalido
	var menorEdad uint8

	for marco, pagina := range tablaMarcos {
		if pagina == PaginaInvalida {
			continue
		}
		edad := tablaPaginas[pagina].Edad
		if marcoVictima == MarcoInvalido || edad < menorEdad {
			marcoVictima = marco
			menorEdad = edad
		}
	}

	if marcoVictima == MarcoInvalido {
		fatalInvariante("reemplazo sin marcos ocupados")
	}

	tablaPaginas[tablaMarcos[marcoVictima]].Edad = EdadInicial
	return marcoVictima
}

// envejecerPaginas ejecuta la pasada periódica de envejecimiento sobre las
// páginas residentes: divide la edad por dos, copia el bit de referencia al
// bit más alto de la edad y limpia el bit de referencia.
func envejecerPaginas() {
	for _, pagina := range tablaMarcos {
		if pagina == PaginaInvalida {
			continue
		}

		entrada := &tablaPaginas[pagina]
		entrada.Edad >>= 1
		if entrada.Flags&FlagReferencia != 0 {
			entrada.Edad |= 0x80
			entrada.Flags &^= FlagReferencia
		}
	}
}
