package physics

import "math"

// Emotion is the mood carried by a particle. Its integer value is the signal a
// Selector dispatches on.
type Emotion int

const (
	Calm Emotion = iota
	Happy
	Angry
	emotionCount
)

func (e Emotion) String() string {
	switch e {
	case Calm:
		return "calm"
	case Happy:
		return "happy"
	case Angry:
		return "angry"
	default:
		return "unknown"
	}
}

// Particle is a point mass integrated with semi-implicit Euler.
type Particle struct {
	Position     Vector3
	Velocity     Vector3
	Acceleration Vector3
	// Damping is the fraction of velocity kept per second.
	Damping     float64
	InverseMass float64
	Emotion     Emotion

	force Vector3
}

// SetMass sets the inverse mass. Non-positive masses make the particle immovable.
func (p *Particle) SetMass(mass float64) {
	if mass <= 0 {
		p.InverseMass = 0
		return
	}
	p.InverseMass = 1 / mass
}

// Mass returns +Inf for immovable particles.
func (p Particle) Mass() float64 {
	if p.InverseMass == 0 {
		return math.Inf(1)
	}
	return 1 / p.InverseMass
}

func (p *Particle) AddForce(f Vector3) { p.force = p.force.Add(f) }
func (p *Particle) ClearForces()       { p.force = Vector3{} }

// Integrate advances the particle by dt seconds and clears accumulated forces.
func (p *Particle) Integrate(dt float64) {
	if p.InverseMass <= 0 || dt <= 0 {
		return
	}
	p.Position = p.Position.AddScaled(p.Velocity, dt)

	acc := p.Acceleration.AddScaled(p.force, p.InverseMass)
	p.Velocity = p.Velocity.AddScaled(acc, dt)
	p.Velocity = p.Velocity.Scale(math.Pow(p.Damping, dt))

	p.ClearForces()
}
