package blog

import "time"

// SamplePosts is the hardcoded collection the admin surface seeds the
// store with when the slot is empty.
func SamplePosts() []Post {
	return []Post{
		{
			ID:      "1",
			Title:   "The Future of DevOps: Trends and Predictions for 2025",
			Slug:    "future-of-devops-2025",
			Excerpt: "Explore the emerging trends in DevOps that will shape the software development landscape in 2025, including AI-driven automation, GitOps, and platform engineering.",
			Content: `<h2>Introduction</h2>
<p>DevOps has revolutionized how we build, deploy, and maintain software applications. As we look toward 2025, several emerging trends are set to reshape the DevOps landscape even further.</p>
<h2>1. AI-Driven Automation</h2>
<p>Artificial Intelligence is becoming increasingly integrated into DevOps workflows. From predictive analytics for system failures to automated code reviews and intelligent deployment strategies, AI is making DevOps more efficient and reliable.</p>
<ul>
<li>Predictive maintenance and failure prevention</li>
<li>Automated code quality assessment</li>
<li>Intelligent resource allocation</li>
<li>Enhanced security threat detection</li>
</ul>
<h2>2. GitOps and Infrastructure as Code</h2>
<p>GitOps is gaining momentum as the preferred approach for managing infrastructure and applications. By treating infrastructure as code and using Git as the single source of truth, teams can achieve better consistency, auditability, and collaboration.</p>
<h2>3. Platform Engineering</h2>
<p>Platform engineering is emerging as a discipline that focuses on building internal developer platforms. These platforms abstract away infrastructure complexity and provide developers with self-service capabilities.</p>
<h2>Conclusion</h2>
<p>The future of DevOps is bright, with exciting developments in automation, security, and developer experience. Organizations that embrace these trends will be better positioned to deliver high-quality software faster and more reliably.</p>`,
			Author:      "Ankit Sharma",
			PublishDate: "2024-12-20",
			ReadTime:    8,
			Category:    "DevOps",
			Tags:        []string{"DevOps", "Automation", "AI", "GitOps", "Platform Engineering"},
			Featured:    true,
			Image:       "https://images.pexels.com/photos/577585/pexels-photo-577585.jpeg?auto=compress&cs=tinysrgb&w=800",
			Status:      StatusPublished,
			Views:       1250,
			Likes:       89,
			CreatedAt:   time.Date(2024, 12, 20, 10, 0, 0, 0, time.UTC),
			UpdatedAt:   time.Date(2024, 12, 20, 10, 0, 0, 0, time.UTC),
		},
		{
			ID:      "2",
			Title:   "AWS Cost Optimization: 10 Proven Strategies to Reduce Your Cloud Bill",
			Slug:    "aws-cost-optimization-strategies",
			Excerpt: "Learn practical strategies to optimize your AWS costs without compromising performance. From right-sizing instances to leveraging spot instances and reserved capacity.",
			Content: `<h2>Introduction</h2>
<p>Cloud costs can quickly spiral out of control if not properly managed. This comprehensive guide covers proven strategies to optimize your AWS spending while maintaining performance and reliability.</p>
<h2>1. Right-Sizing Your Instances</h2>
<p>One of the most effective ways to reduce costs is to ensure your EC2 instances are properly sized for your workloads. Use AWS CloudWatch metrics to analyze CPU, memory, and network utilization.</p>
<h2>2. Leverage Reserved Instances and Savings Plans</h2>
<p>For predictable workloads, Reserved Instances and Savings Plans can provide significant cost savings compared to On-Demand pricing.</p>
<h2>3. Implement Auto Scaling</h2>
<p>Auto Scaling ensures you only pay for the resources you need when you need them. Configure scaling policies based on demand patterns.</p>
<h2>4. Use Spot Instances for Fault-Tolerant Workloads</h2>
<p>Spot Instances can provide up to 90% cost savings for workloads that can tolerate interruptions.</p>
<h2>Conclusion</h2>
<p>Cost optimization is an ongoing process that requires regular monitoring and adjustment. Implement these strategies gradually and measure their impact on your AWS bill.</p>`,
			Author:      "Akshay Gupta",
			PublishDate: "2024-12-18",
			ReadTime:    12,
			Category:    "Cloud Computing",
			Tags:        []string{"AWS", "Cost Optimization", "Cloud", "FinOps"},
			Featured:    true,
			Image:       "https://images.pexels.com/photos/1181675/pexels-photo-1181675.jpeg?auto=compress&cs=tinysrgb&w=800",
			Status:      StatusPublished,
			Views:       2100,
			Likes:       156,
			CreatedAt:   time.Date(2024, 12, 18, 10, 0, 0, 0, time.UTC),
			UpdatedAt:   time.Date(2024, 12, 18, 10, 0, 0, 0, time.UTC),
		},
		{
			ID:      "3",
			Title:   "Implementing Zero Trust Security in Modern Applications",
			Slug:    "zero-trust-security-implementation",
			Excerpt: "A comprehensive guide to implementing Zero Trust security architecture in your applications, covering identity verification, least privilege access, and continuous monitoring.",
			Content: `<h2>Introduction</h2>
<p>Zero Trust security is a strategic approach to cybersecurity that secures an organization by eliminating trust from the organization's network architecture and requiring verification for every person and device trying to access resources.</p>
<h2>Core Principles</h2>
<ul>
<li><strong>Never trust, always verify:</strong> Every user and device must be authenticated and authorized</li>
<li><strong>Least privilege access:</strong> Users should only have access to what they absolutely need</li>
<li><strong>Assume breach:</strong> Design systems assuming that attackers are already inside</li>
</ul>
<h2>Implementation Strategy</h2>
<p>Implementing Zero Trust requires a comprehensive approach that includes identity management, network segmentation, and continuous monitoring.</p>
<h2>Benefits</h2>
<p>Organizations that implement Zero Trust see significant improvements in their security posture, including reduced risk of data breaches and better compliance with regulatory requirements.</p>`,
			Author:      "Vaibhav Patidar",
			PublishDate: "2024-12-15",
			ReadTime:    10,
			Category:    "Cybersecurity",
			Tags:        []string{"Security", "Zero Trust", "Identity Management", "DevSecOps"},
			Featured:    false,
			Image:       "https://images.pexels.com/photos/60504/security-protection-anti-virus-software-60504.jpeg?auto=compress&cs=tinysrgb&w=800",
			Status:      StatusPublished,
			Views:       890,
			Likes:       67,
			CreatedAt:   time.Date(2024, 12, 15, 10, 0, 0, 0, time.UTC),
			UpdatedAt:   time.Date(2024, 12, 15, 10, 0, 0, 0, time.UTC),
		},
		{
			ID:      "4",
			Title:   "Kubernetes Best Practices: From Development to Production",
			Slug:    "kubernetes-best-practices",
			Excerpt: "Master Kubernetes deployment with our comprehensive guide covering container orchestration, resource management, security, and monitoring best practices.",
			Content: `<h2>Introduction</h2>
<p>Kubernetes has become the de facto standard for container orchestration. This guide covers essential best practices for deploying and managing Kubernetes clusters in production environments.</p>
<h2>Resource Management</h2>
<p>Proper resource allocation is crucial for optimal performance. Set appropriate CPU and memory limits for all containers to prevent resource contention.</p>
<h2>Security Considerations</h2>
<p>Implement pod security policies, use network policies for traffic control, and regularly update your cluster components to maintain security.</p>
<h2>Monitoring and Observability</h2>
<p>Set up comprehensive monitoring using tools like Prometheus and Grafana to gain visibility into your cluster's health and performance.</p>
<h2>Conclusion</h2>
<p>Following these best practices will help you build robust, scalable, and secure Kubernetes deployments that can handle production workloads effectively.</p>`,
			Author:      "Ankit Sharma",
			PublishDate: "2024-12-12",
			ReadTime:    15,
			Category:    "DevOps",
			Tags:        []string{"Kubernetes", "Containers", "Orchestration", "Best Practices"},
			Featured:    false,
			Image:       "https://images.pexels.com/photos/1181677/pexels-photo-1181677.jpeg?auto=compress&cs=tinysrgb&w=800",
			Status:      StatusPublished,
			Views:       1456,
			Likes:       123,
			CreatedAt:   time.Date(2024, 12, 12, 10, 0, 0, 0, time.UTC),
			UpdatedAt:   time.Date(2024, 12, 12, 10, 0, 0, 0, time.UTC),
		},
		{
			ID:      "5",
			Title:   "Building Scalable React Applications: Architecture and Performance",
			Slug:    "scalable-react-applications",
			Excerpt: "Learn how to build scalable React applications with proper architecture, state management, performance optimization, and testing strategies.",
			Content: `<h2>Introduction</h2>
<p>Building scalable React applications requires careful consideration of architecture, state management, and performance optimization strategies.</p>
<h2>Component Architecture</h2>
<p>Design your components with reusability and maintainability in mind. Use composition over inheritance and keep components focused on a single responsibility.</p>
<h2>State Management</h2>
<p>Choose the right state management solution for your application size and complexity. Consider React Context, Redux, or Zustand based on your needs.</p>
<h2>Performance Optimization</h2>
<p>Implement code splitting, lazy loading, and memoization to ensure your application performs well as it scales.</p>
<h2>Testing Strategy</h2>
<p>Establish a comprehensive testing strategy that includes unit tests, integration tests, and end-to-end tests to maintain code quality.</p>`,
			Author:      "Akshay Gupta",
			PublishDate: "2024-12-10",
			ReadTime:    11,
			Category:    "Web Development",
			Tags:        []string{"React", "JavaScript", "Performance", "Architecture"},
			Featured:    false,
			Image:       "https://images.pexels.com/photos/196644/pexels-photo-196644.jpeg?auto=compress&cs=tinysrgb&w=800",
			Status:      StatusPublished,
			Views:       1234,
			Likes:       98,
			CreatedAt:   time.Date(2024, 12, 10, 10, 0, 0, 0, time.UTC),
			UpdatedAt:   time.Date(2024, 12, 10, 10, 0, 0, 0, time.UTC),
		},
		{
			ID:      "6",
			Title:   "CI/CD Pipeline Security: Protecting Your Software Supply Chain",
			Slug:    "cicd-pipeline-security",
			Excerpt: "Secure your CI/CD pipelines against supply chain attacks with comprehensive security measures, vulnerability scanning, and secure coding practices.",
			Content: `<h2>Introduction</h2>
<p>CI/CD pipelines are critical infrastructure that requires robust security measures to protect against supply chain attacks and ensure the integrity of your software delivery process.</p>
<h2>Pipeline Security Fundamentals</h2>
<p>Implement security scanning at every stage of your pipeline, from source code analysis to container image scanning and runtime protection.</p>
<h2>Access Control</h2>
<p>Use role-based access control and principle of least privilege to limit who can modify pipeline configurations and access sensitive resources.</p>
<h2>Vulnerability Management</h2>
<p>Integrate automated vulnerability scanning tools to identify and remediate security issues before they reach production.</p>
<h2>Best Practices</h2>
<p>Follow industry best practices for secure CI/CD, including secret management, artifact signing, and audit logging.</p>`,
			Author:      "Vaibhav Patidar",
			PublishDate: "2024-12-08",
			ReadTime:    9,
			Category:    "DevSecOps",
			Tags:        []string{"CI/CD", "Security", "Supply Chain", "DevSecOps"},
			Featured:    false,
			Image:       "https://images.pexels.com/photos/574071/pexels-photo-574071.jpeg?auto=compress&cs=tinysrgb&w=800",
			Status:      StatusPublished,
			Views:       987,
			Likes:       76,
			CreatedAt:   time.Date(2024, 12, 8, 10, 0, 0, 0, time.UTC),
			UpdatedAt:   time.Date(2024, 12, 8, 10, 0, 0, 0, time.UTC),
		},
	}
}
