package domain

import (
	"math/rand/v2"
)

// DefaultQuestionCount is how many questions an interview asks unless configured otherwise
const DefaultQuestionCount = 5

// QuestionBank maps a technology to its fixed, ordered question list.
// A bank is built once at startup and only read afterwards.
type QuestionBank map[TechID][]string

// Questions returns the list for one technology, nil when the bank has none
func (b QuestionBank) Questions(tech TechID) []string {
	return b[tech]
}

// SelectQuestions aggregates the questions of every technology in stack,
// drops exact duplicates, shuffles and keeps at most count of them.
// A nil rng falls back to the shared generator.
func SelectQuestions(bank QuestionBank, stack []TechID, count int, rng *rand.Rand) []string {
	if count <= 0 {
		return []string{}
	}

	seen := make(map[string]struct{})
	pool := make([]string, 0)
	for _, tech := range stack {
		for _, q := range bank.Questions(tech) {
			if _, dup := seen[q]; dup {
				continue
			}
			seen[q] = struct{}{}
			pool = append(pool, q)
		}
	}

	swap := func(i, j int) { pool[i], pool[j] = pool[j], pool[i] }
	if rng != nil {
		rng.Shuffle(len(pool), swap)
	} else {
		rand.Shuffle(len(pool), swap)
	}

	if len(pool) > count {
		pool = pool[:count]
	}
	return pool
}

// DefaultQuestionBank returns a fresh copy of the built-in bank
func DefaultQuestionBank() QuestionBank {
	bank := make(QuestionBank, len(defaultQuestions))
	for tech, qs := range defaultQuestions {
		bank[tech] = append([]string(nil), qs...)
	}
	return bank
}

var defaultQuestions = map[TechID][]string{
	TechPython: {
		"Explain the difference between lists and tuples in Python.",
		"What are Python decorators and how do you use them?",
		"How does Python handle memory management?",
		"Explain the Global Interpreter Lock (GIL) in Python.",
		"What are Python generators and why would you use them?",
		"How would you handle exceptions in Python?",
		"What is the difference between 'is' and '==' in Python?",
		"Explain how Python's garbage collection works.",
		"What are lambda functions in Python?",
		"How would you implement multithreading in Python?",
	},
	TechJavaScript: {
		"Explain the difference between let, const, and var.",
		"What are closures in JavaScript?",
		"How does the event loop work in JavaScript?",
		"Explain the concept of hoisting in JavaScript.",
		"What are promises and how do they work?",
		"Explain the difference between == and === in JavaScript.",
		"What is async/await and how does it work?",
		"How would you handle errors in JavaScript?",
		"Explain the concept of 'this' in JavaScript.",
		"What are arrow functions and how do they differ from regular functions?",
	},
	TechDjango: {
		"Explain Django's MTV architecture.",
		"What are Django migrations and how do they work?",
		"How would you optimize a slow Django application?",
		"Explain Django's authentication system.",
		"What are Django signals and when would you use them?",
		"How does Django handle database transactions?",
		"Explain Django's middleware system.",
		"What are class-based views and when would you use them?",
		"How would you implement caching in Django?",
		"Explain Django's ORM and its advantages.",
	},
	TechReact: {
		"Explain the virtual DOM in React.",
		"What are React hooks and why are they important?",
		"Explain the component lifecycle in React.",
		"What is JSX and how does it work?",
		"How would you optimize a React application?",
		"Explain state and props in React.",
		"What is Redux and when would you use it?",
		"How would you handle forms in React?",
		"Explain React's context API.",
		"What are higher-order components in React?",
	},
	TechNodeJS: {
		"Explain the event-driven architecture of Node.js.",
		"What is the difference between blocking and non-blocking I/O?",
		"How would you handle errors in Node.js applications?",
		"Explain the concept of streams in Node.js.",
		"What is the purpose of the package.json file?",
		"How does Node.js handle child processes?",
		"Explain middleware in Express.js.",
		"What are the security best practices for Node.js applications?",
		"How would you scale a Node.js application?",
		"Explain the cluster module in Node.js.",
	},
	TechSQL: {
		"Explain the difference between INNER JOIN and LEFT JOIN.",
		"What are database indexes and why are they important?",
		"How would you optimize a slow SQL query?",
		"Explain database normalization.",
		"What are stored procedures and when would you use them?",
		"Explain ACID properties in databases.",
		"What is the difference between DELETE, TRUNCATE, and DROP?",
		"How would you handle database transactions?",
		"Explain the difference between NoSQL and SQL databases.",
		"What are database views and when would you use them?",
	},
	TechJava: {
		"Explain the difference between JDK, JRE, and JVM.",
		"What are the main features of Java 8?",
		"Explain the concept of multithreading in Java.",
		"What are Java generics and why are they useful?",
		"Explain the Java memory model.",
		"What are Java streams and how do they work?",
		"Explain exception handling in Java.",
		"What is the difference between == and .equals() in Java?",
		"Explain Java's garbage collection mechanism.",
		"What are Java annotations and how do you use them?",
	},
	TechHTML: {
		"Explain the difference between HTML4 and HTML5.",
		"What are semantic HTML elements and why are they important?",
		"Explain the HTML document structure.",
		"What are data attributes and how would you use them?",
		"Explain the difference between block and inline elements.",
		"How would you optimize a website for accessibility?",
		"What are meta tags and why are they important?",
		"Explain the difference between cookies, localStorage, and sessionStorage.",
		"How would you embed multimedia content in HTML?",
		"Explain the purpose of the DOCTYPE declaration.",
	},
	TechCSS: {
		"Explain the CSS box model.",
		"What are CSS preprocessors and why would you use them?",
		"Explain the difference between display: none and visibility: hidden.",
		"What are CSS Grid and Flexbox and when would you use each?",
		"Explain CSS specificity and how it works.",
		"How would you implement responsive design in CSS?",
		"What are CSS variables and how do you use them?",
		"Explain the difference between margin and padding.",
		"What are CSS animations and how do you implement them?",
		"Explain the concept of BEM in CSS.",
	},
}
