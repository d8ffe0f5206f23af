package components

// PlayerComponent 玩家飞船状态
type PlayerComponent struct {
	Speed      float64 // 移动速度（像素/秒）
	CooldownMs int64   // 射击冷却（毫秒）
	CanShoot   bool    // 冷却结束可以射击
	LastShotMs int64   // 上次射击时的会话时钟
}
