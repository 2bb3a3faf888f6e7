package entity

// Bullet is a pooled projectile. Bullets are never destroyed, only recycled.
type Bullet struct {
	Base
	Owner  Category // CategoryPlayer or CategoryEnemy
	Damage int
}

// NewBullet is the pool factory.
func NewBullet() *Bullet {
	return &Bullet{}
}

// ResetBullet is the pool reset hook.
func ResetBullet(b *Bullet) {
	*b = Bullet{}
}

// Launch initializes a bullet centered horizontally on cx with its top at y.
func (b *Bullet) Launch(owner Category, cx, y, vx, vy, w, h float64, damage int) {
	cat := CategoryPlayerBullet
	if owner == CategoryEnemy {
		cat = CategoryEnemyBullet
	}
	b.Base = Base{
		X:         cx - w/2,
		Y:         y,
		VX:        vx,
		VY:        vy,
		W:         w,
		H:         h,
		Health:    1,
		MaxHealth: 1,
		Active:    true,
		Category:  cat,
	}
	b.Owner = owner
	b.Damage = damage
}
