package assistant

import "strings"

// keyword-matched canned replies, used whenever the API call fails so
// the visitor always gets an answer
var fallbackResponses = []struct {
	keyword string
	reply   string
}{
	{
		keyword: "services",
		reply:   "We offer comprehensive IT services including DevOps Consulting, App Development, Web Development, Cybersecurity, Digital Marketing, Hosting & Deployment, ERP & CMS Solutions, Custom Software Development, and IT Support & Managed Services. Which service interests you most?",
	},
	{
		keyword: "consultancy",
		reply:   "Our consultancy services include AWS Cloud Consultancy, DevSecOps Advisory & Implementation, Cybersecurity Risk & Compliance, and Business Strategy & Growth Consultancy. Would you like to know more about any specific consultancy?",
	},
	{
		keyword: "contact",
		reply:   "You can reach us at +91 9461232921 or email us at official@codigohunt.com. Our office is located at CBC 13 First Floor, Vikramaditya Marg, Jaipur, Rajasthan. Would you like to schedule a consultation?",
	},
	{
		keyword: "pricing",
		reply:   "We offer competitive pricing tailored to your specific needs. Each project is unique, so we provide customized quotes. Please contact us at +91 9461232921 for a detailed discussion about your requirements.",
	},
	{
		keyword: "team",
		reply:   "Our team consists of experienced directors: Ankit Sharma (DevOps Engineer & Development Expert with 5+ years), Akshay Gupta (Cloud, DevOps & DevSecOps Expert with 6+ years), Vaibhav Patidar (DevOps and IT Services & Support Expert with 5+ years), Sameer Khan (DevOps and IT Services & Support Expert with 5+ years), and Ravi Naval (Sales Head with 5+ years).",
	},
	{
		keyword: "experience",
		reply:   "We have successfully delivered 50+ projects for 10+ global clients across 20+ industry domains with a 98% client retention rate. Our team brings enterprise-level expertise to every project.",
	},
	{
		keyword: "devops",
		reply:   "Our DevOps services include CI/CD pipeline setup, monitoring solutions, cloud infrastructure management, and OpenShift implementations. We help streamline your development workflow and improve deployment efficiency.",
	},
	{
		keyword: "cloud",
		reply:   "We specialize in AWS cloud solutions, cloud migration, infrastructure as code, containerization, and cloud security. Our cloud experts can help optimize your cloud infrastructure for performance and cost.",
	},
	{
		keyword: "security",
		reply:   "Our cybersecurity services cover risk assessment, compliance auditing, security implementation, threat monitoring, and security training. We ensure your systems are protected against modern cyber threats.",
	},
}

const (
	greetingReply = "Hello! Welcome to Codigohunt Solutions. I'm here to help you learn about our IT consultancy services. What would you like to know?"
	helpReply     = "I can help you with information about our services, consultancy offerings, team, pricing, or contact details. What specific area interests you?"
	defaultReply  = "Thank you for your question! For detailed information about your specific needs, I recommend contacting our team directly at +91 9461232921 or official@codigohunt.com. Our experts can provide personalized assistance."
)

// FallbackReply picks a deterministic canned reply for the user message.
// Never empty.
func FallbackReply(userMessage string) string {
	message := strings.ToLower(userMessage)

	for _, r := range fallbackResponses {
		if strings.Contains(message, r.keyword) {
			return r.reply
		}
	}

	if strings.Contains(message, "hello") || strings.Contains(message, "hi") {
		return greetingReply
	}
	if strings.Contains(message, "help") {
		return helpReply
	}

	return defaultReply
}
