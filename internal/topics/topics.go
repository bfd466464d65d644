// Package topics holds the starter-topic catalog behind the random-topic
// endpoint.
package topics

import "math/rand/v2"

// Suggestion pairs a topic with its category.
type Suggestion struct {
	Category string `json:"category"`
	Topic    string `json:"topic"`
}

var catalog = map[string][]string{
	"Artificial Intelligence & Machine Learning": {
		"Deep Learning for Natural Language Processing",
		"Reinforcement Learning in Autonomous Systems",
		"Explainable AI and Model Interpretability",
		"Federated Learning for Privacy-Preserving ML",
		"Generative AI and Large Language Models",
		"Computer Vision for Medical Imaging",
		"AI Ethics and Bias Mitigation",
		"Neural Architecture Search and AutoML",
	},
	"Software Engineering & Development": {
		"Microservices Architecture and Design Patterns",
		"DevOps and Continuous Integration/Deployment",
		"Cloud-Native Application Development",
		"Test-Driven Development Best Practices",
		"Code Quality and Technical Debt Management",
		"API Design and RESTful Architecture",
		"Containerization and Orchestration with Kubernetes",
		"Serverless Computing and Function-as-a-Service",
	},
	"Cybersecurity & Privacy": {
		"Zero Trust Security Architecture",
		"Blockchain for Secure Data Management",
		"Privacy-Preserving Technologies and Differential Privacy",
		"Network Security and Intrusion Detection Systems",
		"Cryptography and Encryption Standards",
		"Security in IoT Devices and Networks",
		"Penetration Testing and Vulnerability Assessment",
		"Identity and Access Management Solutions",
	},
	"Data Science & Analytics": {
		"Big Data Processing with Apache Spark",
		"Time Series Analysis and Forecasting",
		"A/B Testing and Experimental Design",
		"Data Visualization Best Practices",
		"Predictive Analytics for Business Intelligence",
		"Data Warehousing and ETL Processes",
		"Real-Time Stream Processing",
		"Data Governance and Quality Management",
	},
	"Networking & Distributed Systems": {
		"5G Networks and Edge Computing",
		"Software-Defined Networking",
		"Distributed Consensus Algorithms",
		"Content Delivery Networks and Caching",
		"Peer-to-Peer Systems and Protocols",
		"Network Function Virtualization",
	},
	"Emerging Technologies": {
		"Quantum Computing Applications",
		"Augmented and Virtual Reality Systems",
		"Digital Twin Technology",
		"Autonomous Vehicles and Sensor Fusion",
		"Brain-Computer Interfaces",
		"Sustainable and Green Computing",
	},
}

var categories = func() []string {
	out := make([]string, 0, len(catalog))
	for c := range catalog {
		out = append(out, c)
	}
	return out
}()

// Random returns a random topic suggestion.
func Random() Suggestion {
	category := categories[rand.IntN(len(categories))]
	list := catalog[category]
	return Suggestion{
		Category: category,
		Topic:    list[rand.IntN(len(list))],
	}
}
