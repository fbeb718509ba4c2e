// Package physics holds the small particle lattice the demo trees consult for
// their decision signal.
package physics

import (
	"errors"
	"sync"
)

const (
	BaseMass  = 1.0
	ExtraMass = 10.0

	DefaultCols = 4
	DefaultRows = 12

	defaultDamping = 0.9
	deckHeight     = 4.0
)

var ErrEmptyLattice = errors.New("physics: lattice needs at least one particle")

// Source supplies the randomness used to re-roll emotions and pick a particle.
type Source interface {
	Intn(n int) int
}

// Lattice is a cols x rows grid of particles resting on a deck. Every Decide
// re-rolls each particle's emotion, loads one random particle with extra mass
// and returns that particle's emotion.
type Lattice struct {
	mu        sync.Mutex
	cols      int
	rows      int
	particles []Particle
	src       Source
	loaded    int
}

func NewLattice(cols, rows int, src Source) (*Lattice, error) {
	if cols <= 0 || rows <= 0 {
		return nil, ErrEmptyLattice
	}
	if src == nil {
		return nil, errors.New("physics: nil source")
	}
	l := &Lattice{
		cols:      cols,
		rows:      rows,
		particles: make([]Particle, cols*rows),
		src:       src,
		loaded:    -1,
	}
	for i := range l.particles {
		p := &l.particles[i]
		p.Position = Vector3{X: float64(i % cols), Y: deckHeight, Z: float64(i / cols)}
		p.Damping = defaultDamping
		p.Acceleration = Gravity
		p.SetMass(BaseMass)
	}
	return l, nil
}

func (l *Lattice) Name() string { return "lattice" }
func (l *Lattice) Len() int     { return len(l.particles) }

// Decide implements bt.Oracle. The result is always in [0, 3).
func (l *Lattice) Decide() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	for i := range l.particles {
		l.particles[i].SetMass(BaseMass)
		l.particles[i].Emotion = Emotion(l.src.Intn(int(emotionCount)))
	}
	l.loaded = l.src.Intn(len(l.particles))
	p := &l.particles[l.loaded]
	p.SetMass(BaseMass + ExtraMass)
	return int(p.Emotion)
}

// Loaded reports the index of the particle carrying the extra mass, or -1
// before the first Decide.
func (l *Lattice) Loaded() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.loaded
}

// Particle returns a copy of the particle at index i.
func (l *Lattice) Particle(i int) Particle {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.particles[i]
}

// Update integrates every particle and keeps them on or above the deck.
func (l *Lattice) Update(dt float64) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	for i := range l.particles {
		p := &l.particles[i]
		p.Integrate(dt)
		if p.Position.Y < deckHeight {
			p.Position.Y = deckHeight
			p.Velocity.Y = 0
		}
	}
	return nil
}
