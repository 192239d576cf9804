package pet

import "time"

// Daily task identifiers
const (
	TaskFeedPet     = "feed_pet"
	TaskPlayWithPet = "play_with_pet"
	TaskSendPayment = "send_payment"
	TaskChatFriend  = "chat_friend"
	TaskScanReceipt = "scan_receipt"
)

// Task is one daily objective
type Task struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Progress  int    `json:"progress"`
	Target    int    `json:"target"`
	XPReward  int    `json:"xpReward"`
	Completed bool   `json:"completed"`
}

// DailyTasks is the template every day starts from
var DailyTasks = []Task{
	{ID: TaskFeedPet, Title: "Feed your pet", Target: 1, XPReward: 10},
	{ID: TaskPlayWithPet, Title: "Play with your pet twice", Target: 2, XPReward: 15},
	{ID: TaskSendPayment, Title: "Send a payment", Target: 1, XPReward: 25},
	{ID: TaskChatFriend, Title: "Send 3 messages to friends", Target: 3, XPReward: 15},
	{ID: TaskScanReceipt, Title: "Scan a receipt", Target: 1, XPReward: 20},
}

// DateKey is the calendar day tasks are keyed by
func DateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

func freshTasks() []Task {
	tasks := make([]Task, len(DailyTasks))
	copy(tasks, DailyTasks)
	return tasks
}

// increment advances task id by n, capped at its target. justCompleted is
// true only on the call that reaches the target.
func increment(tasks []Task, id string, n int) (task Task, justCompleted bool, found bool) {
	for i := range tasks {
		t := &tasks[i]
		if t.ID != id {
			continue
		}
		if t.Completed || n <= 0 {
			return *t, false, true
		}
		t.Progress += n
		if t.Progress >= t.Target {
			t.Progress = t.Target
			t.Completed = true
			justCompleted = true
		}
		return *t, justCompleted, true
	}
	return Task{}, false, false
}
