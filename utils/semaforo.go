package utils

// Semaforo implementa un semáforo contador con canales.
// Cada elemento en el canal representa un permiso disponible.
type Semaforo struct {
	c chan struct{}
}

// NewSemaforo crea un semáforo con un valor inicial y una capacidad máxima.
// Con valor inicial 0 el semáforo nace bloqueado hasta el primer Signal.
func NewSemaforo(inicial int, capacidad int) *Semaforo {
	if capacidad <= 0 {
		capacidad = 1
	}
	if inicial < 0 {
		inicial = 0
	}
	if inicial > capacidad {
		inicial = capacidad
	}

	s := &Semaforo{
		c: make(chan struct{}, capacidad),
	}
	for i := 0; i < inicial; i++ {
		s.c <- struct{}{}
	}
	return s
}

// Wait (P) consume un permiso, bloquea si no hay ninguno disponible
func (s *Semaforo) Wait() {
	<-s.c
}

// Signal (V) repone un permiso
func (s *Semaforo) Signal() {
	select {
	case s.c <- struct{}{}:
	default:
		// Capacidad completa, no hace nada para prevenir incremento excesivo
	}
}

// TryWait intenta consumir un permiso sin bloquear
func (s *Semaforo) TryWait() bool {
	select {
	case <-s.c:
		return true
	default:
		return false
	}
}
