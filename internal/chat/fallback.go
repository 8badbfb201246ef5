package chat

import "strings"

// Canned replies used when the completion provider is unavailable. Selection
// is a pure function of the incoming message text.
const (
	fallbackExperience = "Sharandeep has excellent experience as a Data Scientist Intern at Afame Technologies (improved ML model accuracy by 20%) and as an AI Engineer Intern at AWS (built NLP models with Hugging Face). He's currently pursuing his Master's in Data Science at University at Buffalo."
	fallbackSkills     = "Sharandeep's technical expertise includes Python, Machine Learning (Scikit-learn, TensorFlow), NLP, React.js, FastAPI, and cloud deployment. He's particularly strong in explainable AI and predictive modeling with proven results in production environments."
	fallbackProjects   = "His notable projects include Heart Disease Prediction with XAI (published at ICOTET 2024), CNN vs DNN comparison achieving 98% accuracy, and a comprehensive swimmer club management system. All projects showcase his ability to deliver real-world AI solutions."
	fallbackEducation  = "Sharandeep is currently pursuing a Master's in Data Science at University at Buffalo (GPA: 3.704) and holds a B.Tech in Electronics and Computer Engineering from Sreenidhi Institute, Hyderabad (CGPA: 8.3)."
	fallbackContact    = "You can reach Sharandeep at sharanreddy.adla@gmail.com or +1 (716) 750-9326. He's also active on LinkedIn (linkedin.com/in/sharandeep-reddy) and GitHub (github.com/sharan-555). He's currently available for full-time opportunities in AI/ML engineering."
	fallbackGreeting   = "Hello! I'm Sharandeep's AI assistant. I can tell you about his impressive experience as an AI/ML Engineer, his published research, internships at AWS and Afame Technologies, technical skills, or how to get in touch with him. What would you like to know?"
	fallbackDefault    = "That's a great question! I can help you learn about Sharandeep's experience (AWS, Afame Technologies), technical skills (AI/ML, Python, React), education (Master's at UB), projects (published research, 98% accuracy models), or contact information. He's an accomplished AI/ML Engineer currently seeking new opportunities. What specific area interests you?"
)

var fallbackTopics = []struct {
	keywords []string
	reply    string
}{
	{[]string{"experience", "work", "internship", "job"}, fallbackExperience},
	{[]string{"skill", "technology", "programming", "tech"}, fallbackSkills},
	{[]string{"project", "github", "portfolio"}, fallbackProjects},
	{[]string{"education", "university", "degree", "study"}, fallbackEducation},
	{[]string{"contact", "email", "phone", "reach", "hire"}, fallbackContact},
	{[]string{"hello", "hi", "hey", "greet"}, fallbackGreeting},
}

// FallbackReply selects a canned response by scanning the message for topic
// keywords. The first matching topic wins; the generic menu response is the
// catch-all. Never returns an empty string.
func FallbackReply(message string) string {
	lower := strings.ToLower(message)
	for _, topic := range fallbackTopics {
		for _, kw := range topic.keywords {
			if strings.Contains(lower, kw) {
				return topic.reply
			}
		}
	}
	return fallbackDefault
}
