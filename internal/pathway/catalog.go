package pathway

// Experience levels.
const (
	LevelBeginner     = "Beginner"
	LevelIntermediate = "Intermediate"
	LevelAdvanced     = "Advanced"
)

// interests is the ordered list offered to clients. Some entries have no
// table row and look up to an empty pathway.
var interests = []string{
	"Machine Learning",
	"Data Science",
	"Artificial Intelligence",
	"Robotics",
	"Cyber Security",
	"Web Development",
	"Cloud Computing",
	"Big Data Analytics",
	"Game Development",
	"Information Systems",
	"Graphic Design",
	"User Interface Design",
	"Digital Marketing",
	"IoT",
}

var levels = []string{LevelBeginner, LevelIntermediate, LevelAdvanced}

// table maps interest -> level -> ordered topics. It is never mutated.
var table = map[string]map[string][]string{
	"Machine Learning": {
		LevelBeginner:     {"Python Basics", "Statistics", "Scikit-learn", "Intro to ML"},
		LevelIntermediate: {"TensorFlow Basics", "Neural Networks", "Feature Engineering", "Hyperparameter Tuning"},
		LevelAdvanced:     {"Deep Learning", "Reinforcement Learning", "MLOps", "Transformer Models"},
	},
	"Data Science": {
		LevelBeginner:     {"Python Basics", "Data Analysis with Pandas", "SQL Basics", "Data Visualization"},
		LevelIntermediate: {"Machine Learning", "Time Series Analysis", "Big Data", "Deep Learning"},
		LevelAdvanced:     {"AI Ethics", "Data Engineering", "NLP", "Computer Vision"},
	},
	"Artificial Intelligence": {
		LevelBeginner:     {"Introduction to AI", "Python for AI", "Search Algorithms", "Basic AI Ethics"},
		LevelIntermediate: {"Neural Networks", "Computer Vision", "NLP Basics", "Game AI"},
		LevelAdvanced:     {"Deep Reinforcement Learning", "Generative AI", "Advanced NLP", "AI Security"},
	},
	"Robotics": {
		LevelBeginner: {"Introduction to Robotics", "Arduino Basics", "Basic Electronics", "Simple Robot Projects"},
		LevelIntermediate: {
			"ROS (Robot Operating System)", "Sensors and Actuators", "Path Planning", "Robot Perception",
		},
		LevelAdvanced: {"Humanoid Robotics", "Autonomous Navigation", "Robot Swarms", "AI in Robotics"},
	},
	"Cyber Security": {
		LevelBeginner: {
			"Cybersecurity Fundamentals", "Networking Basics", "Cryptography Basics", "Ethical Hacking Intro",
		},
		LevelIntermediate: {"Penetration Testing", "Malware Analysis", "Network Security", "Cloud Security"},
		LevelAdvanced: {
			"Cyber Threat Intelligence", "Reverse Engineering", "Incident Response", "Red Teaming",
		},
	},
	"Web Development": {
		LevelBeginner: {"HTML & CSS", "JavaScript Basics", "Responsive Design", "Intro to GitHub"},
		LevelIntermediate: {
			"Frontend Frameworks (React, Vue)", "Backend Development (Node.js, Django)", "APIs", "Databases",
		},
		LevelAdvanced: {
			"Progressive Web Apps", "Performance Optimization", "Security Best Practices", "Scalability",
		},
	},
	"Big Data Analytics": {
		LevelBeginner:     {"Introduction to Big Data", "Hadoop Basics", "SQL & NoSQL", "Data Warehousing"},
		LevelIntermediate: {"Apache Spark", "Data Lakes", "ETL Pipelines", "Data Governance"},
		LevelAdvanced: {
			"Real-time Analytics", "Predictive Analytics", "AI & Big Data", "Scalability Techniques",
		},
	},
	"Game Development": {
		LevelBeginner:     {"Game Design Basics", "Unity Basics", "C# for Game Dev", "2D Game Development"},
		LevelIntermediate: {"3D Game Development", "Physics Engines", "Multiplayer Game Dev", "AI in Games"},
		LevelAdvanced: {
			"Game Optimization", "VR & AR Development", "Advanced AI in Games", "Game Monetization",
		},
	},
	"Cloud Computing": {
		LevelBeginner:     {"Cloud Basics", "AWS/GCP/Azure Intro", "Virtualization", "Storage & Databases"},
		LevelIntermediate: {"Cloud Security", "Kubernetes & Docker", "Serverless Computing", "Cost Optimization"},
		LevelAdvanced:     {"Cloud Architecture", "DevOps in Cloud", "Multi-cloud Strategies", "AI in Cloud"},
	},
}
