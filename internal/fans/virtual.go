package fans

import "sync"

// VirtualFan is an in-memory fan, remembering the last duty written to it.
type VirtualFan struct {
	ID string

	mu     sync.Mutex
	pwm    int
	writes []int
}

func NewVirtualFan(id string, pwm int) *VirtualFan {
	return &VirtualFan{ID: id, pwm: pwm}
}

func (fan *VirtualFan) GetId() string {
	return fan.ID
}

func (fan *VirtualFan) GetPwm() (int, error) {
	fan.mu.Lock()
	defer fan.mu.Unlock()
	return fan.pwm, nil
}

func (fan *VirtualFan) SetPwm(duty int) error {
	fan.mu.Lock()
	defer fan.mu.Unlock()
	fan.pwm = duty
	fan.writes = append(fan.writes, duty)
	return nil
}

// Writes returns every duty written to this fan, oldest first.
func (fan *VirtualFan) Writes() []int {
	fan.mu.Lock()
	defer fan.mu.Unlock()
	return append([]int{}, fan.writes...)
}
