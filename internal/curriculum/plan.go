package curriculum

import "github.com/Ranganatha-codingaddict/Learning-Tracker/internal/models"

// Plan returns the built-in long-range learning plan. Task ids are stable
// across releases; the completed-task id set persisted in the snapshot keys
// off them.
func Plan() []Month {
	return []Month{
		{
			Number: 1,
			Title:  "Foundations: Frontend & DSA Core",
			Phase:  "Phase 1",
			Goal:   "Solid React fundamentals plus linear data structures.",
			Weeks: []Week{
				{
					Number: 1,
					Title:  "React Fundamentals & Arrays",
					Goals:  []string{"Component model internalized", "Array two-pointer patterns"},
					Days: []Day{
						{Day: models.Monday, Tasks: []Task{
							{ID: "m1w1-react-components", Domain: "React+Next.js", Topic: "Components & Props", Description: "Build five composable components", Hours: 2},
							{ID: "m1w1-dsa-arrays", Domain: "DSA", Topic: "Arrays", Description: "Two-pointer and sliding-window drills", Hours: 2},
						}},
						{Day: models.Wednesday, Tasks: []Task{
							{ID: "m1w1-react-state", Domain: "React+Next.js", Topic: "State & Effects", Description: "Lift state, effect cleanup patterns", Hours: 2.5},
						}},
						{Day: models.Friday, Tasks: []Task{
							{ID: "m1w1-dsa-strings", Domain: "DSA", Topic: "Strings", Description: "Pattern matching problem set", Hours: 2},
						}},
					},
				},
				{
					Number: 2,
					Title:  "Hooks & Linked Lists",
					Goals:  []string{"Custom hooks", "Linked-list manipulation from memory"},
					Days: []Day{
						{Day: models.Tuesday, Tasks: []Task{
							{ID: "m1w2-react-hooks", Domain: "React+Next.js", Topic: "Custom Hooks", Description: "Extract three custom hooks from a dashboard", Hours: 2},
							{ID: "m1w2-dsa-lists", Domain: "DSA", Topic: "Linked Lists", Description: "Reversal and cycle-detection drills", Hours: 2},
						}},
						{Day: models.Thursday, Tasks: []Task{
							{ID: "m1w2-dsa-stacks", Domain: "DSA", Topic: "Stacks & Queues", Description: "Monotonic stack problem set", Hours: 2},
						}},
					},
				},
			},
		},
		{
			Number: 2,
			Title:  "Backend & Trees",
			Phase:  "Phase 1",
			Goal:   "REST services with persistence plus hierarchical structures.",
			Weeks: []Week{
				{
					Number: 5,
					Title:  "Services & Binary Trees",
					Goals:  []string{"CRUD service deployed locally", "Tree traversals without hints"},
					Days: []Day{
						{Day: models.Monday, Tasks: []Task{
							{ID: "m2w5-backend-rest", Domain: "Backend", Topic: "REST APIs", Description: "Design and build a CRUD service", Hours: 3},
						}},
						{Day: models.Wednesday, Tasks: []Task{
							{ID: "m2w5-dsa-trees", Domain: "DSA", Topic: "Binary Trees", Description: "DFS/BFS traversal drills", Hours: 2},
							{ID: "m2w5-backend-db", Domain: "Backend", Topic: "Databases", Description: "Schema design and indexing basics", Hours: 2},
						}},
						{Day: models.Saturday, Tasks: []Task{
							{ID: "m2w5-dsa-bst", Domain: "DSA", Topic: "BSTs", Description: "Validation and kth-element problems", Hours: 2},
						}},
					},
				},
			},
		},
		{
			Number: 3,
			Title:  "Systems & Graphs",
			Phase:  "Phase 2",
			Goal:   "Cloud deployment fluency and graph algorithms.",
			Weeks: []Week{
				{
					Number: 9,
					Title:  "Deployment & Graph Basics",
					Goals:  []string{"Project live on cloud infra", "BFS/DFS on adjacency lists"},
					Days: []Day{
						{Day: models.Tuesday, Tasks: []Task{
							{ID: "m3w9-cloud-deploy", Domain: "Cloud", Topic: "Deployment", Description: "Containerize and deploy the CRUD service", Hours: 3},
						}},
						{Day: models.Thursday, Tasks: []Task{
							{ID: "m3w9-dsa-graphs", Domain: "DSA", Topic: "Graphs", Description: "Connected components and shortest paths", Hours: 2.5},
						}},
					},
				},
			},
		},
	}
}
