package slayin

// Overlap reports whether two colliders intersect. Touching edges do not count.
func Overlap(a, b Collider) bool {
	return a.Bounds().Overlaps(b.Bounds())
}

// Resolve applies the outcome of a collision between a and b, if they overlap.
// The outcome depends only on the unordered pair of kinds:
//
//	enemy  + player: player loses 1 health unless invulnerable
//	enemy  + weapon: enemy loses 1 health
//	pickup + player: player heals, pickup is consumed
//
// Every other pair is ignored. Resolve reports whether the two overlapped.
func Resolve(a, b Collider, sink EventSink) bool {
	if !Overlap(a, b) {
		return false
	}
	if b.Kind() < a.Kind() {
		a, b = b, a
	}

	switch {
	case a.Kind() == KindPlayer && b.Kind().IsEnemy():
		a.(*Player).takeHit(sink)
	case a.Kind() == KindWeapon && b.Kind().IsEnemy():
		b.(*Enemy).Health--
	case a.Kind() == KindPlayer && b.Kind() == KindPickup:
		b.(*Pickup).consume(a.(*Player), sink)
	}
	return true
}

func (p *Player) takeHit(sink EventSink) {
	if p.Invulnerable > 0 || p.Health <= 0 {
		return
	}
	p.Health--
	p.Invulnerable = p.tuning.Invulnerable
	sink.Hit(p.Health)
}

func (pk *Pickup) consume(p *Player, sink EventSink) {
	if pk.Health <= 0 {
		return
	}
	p.Health += pk.heal
	pk.Health = 0
	sink.Healed(p.Health)
}

// resolveCollisions runs one tick of collision checks in a fixed order:
// pickups against the player, then each enemy against the weapon and then
// the player. Consumed pickups and dead enemies are removed; each dead
// enemy scores a point.
func (s *Session) resolveCollisions() {
	pickups := s.Pickups[:0]
	for _, pk := range s.Pickups {
		Resolve(pk, s.Player, s.sink)
		if pk.Health > 0 {
			pickups = append(pickups, pk)
		}
	}
	clear(s.Pickups[len(pickups):])
	s.Pickups = pickups

	for _, e := range s.Enemies {
		Resolve(e, &s.Player.Weapon, s.sink)
		Resolve(e, s.Player, s.sink)
	}

	enemies := s.Enemies[:0]
	for _, e := range s.Enemies {
		if e.Health > 0 {
			enemies = append(enemies, e)
			continue
		}
		s.Score++
		s.sink.Slain(s.Score)
	}
	clear(s.Enemies[len(enemies):])
	s.Enemies = enemies
}
