package models

// WeeklyTemplate returns the canonical weekly schedule with every task
// uncompleted and notes cleared. Callers receive a fresh copy on every call
// so a reset never aliases the stored schedule.
func WeeklyTemplate() []DailySchedule {
	return []DailySchedule{
		{Day: Monday, Tasks: []ScheduleTask{
			{ID: "m1", Name: "DSA: Linked Lists & Arrays - Advanced Problems", EstimatedHours: 2.0},
			{ID: "m2", Name: "Frontend: React State Management (Redux/Zustand)", EstimatedHours: 2.5},
			{ID: "m3", Name: "Review new JS ESNext features (Proxies, Reflect)", EstimatedHours: 1.0},
			{ID: "m4", Name: "Frontend: Responsive Design Principles & CSS Grid", EstimatedHours: 1.5},
		}},
		{Day: Tuesday, Tasks: []ScheduleTask{
			{ID: "t1", Name: "DSA: Trees & Graphs - DFS/BFS Applications", EstimatedHours: 2.0},
			{ID: "t2", Name: "Backend: Spring Boot Microservices Architecture", EstimatedHours: 3.0},
			{ID: "t3", Name: "Database Optimization Techniques (Indexing, Query Tuning)", EstimatedHours: 1.5},
			{ID: "t4", Name: "Backend: REST API Security Best Practices", EstimatedHours: 2.0},
		}},
		{Day: Wednesday, Tasks: []ScheduleTask{
			{ID: "w1", Name: "Python: Decorators, Generators & Context Managers", EstimatedHours: 2.0},
			{ID: "w2", Name: "ML: Unsupervised Learning (Clustering, PCA)", EstimatedHours: 3.0},
			{ID: "w3", Name: "Implement a simple NLP sentiment analysis model", EstimatedHours: 2.0},
			{ID: "w4", Name: "Python: Asynchronous Programming (async/await)", EstimatedHours: 1.5},
		}},
		{Day: Thursday, Tasks: []ScheduleTask{
			{ID: "th1", Name: "AWS: Lambda & API Gateway for Serverless", EstimatedHours: 2.5},
			{ID: "th2", Name: "ML Projects: Deep Learning with TensorFlow/PyTorch", EstimatedHours: 3.5},
			{ID: "th3", Name: "Deploy a static website on AWS S3 & CloudFront", EstimatedHours: 1.5},
			{ID: "th4", Name: "ML Projects: Model Deployment & Monitoring", EstimatedHours: 2.0},
		}},
		{Day: Friday, Tasks: []ScheduleTask{
			{ID: "f1", Name: "DevOps: Kubernetes Basics & Pods", EstimatedHours: 3.0},
			{ID: "f2", Name: "Deployment: Advanced CI/CD with Jenkins/GitLab CI", EstimatedHours: 3.0},
			{ID: "f3", Name: "Set up local Kubernetes cluster (Minikube/Docker Desktop)", EstimatedHours: 1.5},
			{ID: "f4", Name: "DevOps: Infrastructure as Code (Terraform/Ansible)", EstimatedHours: 2.0},
		}},
		{Day: Saturday, Tasks: []ScheduleTask{
			{ID: "sa1", Name: "System Design: Distributed Systems & Consensus", EstimatedHours: 3.5},
			{ID: "sa2", Name: "Projects: Implement a new feature in personal project", EstimatedHours: 3.0},
			{ID: "sa3", Name: "Participate in a coding contest or hackathon prep", EstimatedHours: 2.0},
			{ID: "sa4", Name: "System Design: Microservices Patterns & Communication", EstimatedHours: 2.5},
		}},
		{Day: Sunday, Tasks: []ScheduleTask{
			{ID: "su1", Name: "Revision: Weekly review of challenging topics", EstimatedHours: 2.5},
			{ID: "su2", Name: "Mocks: Full-stack coding interview practice", EstimatedHours: 2.0},
			{ID: "su3", Name: "LinkedIn: Engage with connections & industry posts", EstimatedHours: 1.0},
			{ID: "su4", Name: "Revision: System Design Case Study Analysis", EstimatedHours: 1.5},
		}},
	}
}

// DefaultReminder returns the initial posting-reminder state.
func DefaultReminder() PostingReminder {
	return PostingReminder{
		Template: "Today's learning: [Topic]. Key takeaway: [Insight]. #coding #dev #learning",
		Ideas: []string{
			"Share a recent coding challenge you overcame.",
			"Discuss a new technology you're excited about.",
			"Post about a valuable resource you found.",
			"Reflect on your learning journey or career goals.",
			"Ask a question to engage your network.",
		},
	}
}

// DefaultTracker returns the initial problem-tracker state.
func DefaultTracker() ProblemTracker {
	return ProblemTracker{
		WeeklyTarget:      10,
		DailySolved:       []DailyCount{},
		DifficultyHistory: []DifficultyEntry{},
	}
}

// NewSnapshot builds the default snapshot for a first-time user. weekStart
// must be the Monday of the current calendar week.
func NewSnapshot(userID, weekStart string) Snapshot {
	return Snapshot{
		UserID:                     userID,
		WeeklySchedule:             WeeklyTemplate(),
		StudySessions:              []StudySession{},
		PomodoroSessions:           []PomodoroSession{},
		ProblemTracker:             DefaultTracker(),
		Projects:                   []Project{},
		PostingReminder:            DefaultReminder(),
		StreakHistory:              []StreakHistoryEntry{},
		WeeklySummaries:            []WeeklySummary{},
		WeeklyReports:              []WeeklyReport{},
		CurrentWeekNumber:          1,
		CurrentWeekStartDate:       weekStart,
		ExternallyCompletedTaskIDs: []string{},
	}
}
