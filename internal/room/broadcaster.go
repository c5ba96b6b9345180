package room

type Broadcaster interface {
	Broadcast(roomCode string, action string, data interface{})
}

type nopBroadcaster struct{}

func (nopBroadcaster) Broadcast(string, string, interface{}) {}
